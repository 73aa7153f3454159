package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"edudesk/internal/education"
)

// formField is one rendered field: a textinput for text kinds, a cycled
// value for select kinds.
type formField struct {
	spec   education.FieldSpec
	input  textinput.Model // KindText
	option string          // KindSelect
}

// RecordFormModal is the schema-driven add/edit form. Validation runs
// on save; violations render inside the modal and nothing reaches the
// controller until the form is valid.
type RecordFormModal struct {
	Title    string
	RecordID string // empty = add

	fields []formField
	focus  int
	errs   map[string]string
}

// Ensure RecordFormModal implements View.
var _ View = (*RecordFormModal)(nil)

// NewRecordFormModal builds the form from the education field schema,
// prefilled from initial (zero FormData for add).
func NewRecordFormModal(title, recordID string, initial education.FormData) *RecordFormModal {
	specs := education.FormFields()
	fields := make([]formField, len(specs))
	for i, spec := range specs {
		f := formField{spec: spec}
		value := initial.Get(spec.Name)
		switch spec.Kind {
		case education.KindSelect:
			if value == "" && len(spec.Options) > 0 {
				value = spec.Options[0]
			}
			// An out-of-list initial value is kept until cycled.
			f.option = value
		default:
			ti := textinput.New()
			ti.Placeholder = spec.Placeholder
			ti.Width = 40
			ti.SetValue(value)
			f.input = ti
		}
		fields[i] = f
	}
	m := &RecordFormModal{
		Title:    title,
		RecordID: recordID,
		fields:   fields,
		errs:     map[string]string{},
	}
	m.setFocus(0)
	return m
}

// Init implements View.
func (m *RecordFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *RecordFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
			return m, nil
		case "left", "right":
			if f := &m.fields[m.focus]; f.spec.Kind == education.KindSelect {
				f.option = cycleOption(f.spec.Options, f.option, msg.String() == "right")
				return m, nil
			}
		case "enter":
			if m.focus == len(m.fields)-1 {
				return m, m.save()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		case "ctrl+s":
			return m, m.save()
		}
	}

	if f := &m.fields[m.focus]; f.spec.Kind == education.KindText {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// save validates the captured form. Valid forms are emitted as
// SubmitRecordMsg; otherwise the violations render and the modal stays.
func (m *RecordFormModal) save() tea.Cmd {
	form := m.FormData()
	problems := education.ValidateForm(form)
	if len(problems) > 0 {
		m.errs = problems
		return nil
	}
	id := m.RecordID
	return func() tea.Msg { return SubmitRecordMsg{ID: id, Form: form} }
}

// FormData collects the current field values into the flat form shape.
// Text fields are trimmed; blank optionals come out as "".
func (m *RecordFormModal) FormData() education.FormData {
	var form education.FormData
	for _, f := range m.fields {
		switch f.spec.Kind {
		case education.KindSelect:
			form.Set(f.spec.Name, f.option)
		default:
			form.Set(f.spec.Name, strings.TrimSpace(f.input.Value()))
		}
	}
	return form
}

func (m *RecordFormModal) setFocus(i int) {
	m.focus = i
	for j := range m.fields {
		if m.fields[j].spec.Kind != education.KindText {
			continue
		}
		if j == i {
			m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
}

func cycleOption(options []string, current string, forward bool) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Out-of-list value: cycling enters the list at its start.
		return options[0]
	}
	if forward {
		return options[(idx+1)%len(options)]
	}
	return options[(idx-1+len(options))%len(options)]
}

// View implements View.
func (m *RecordFormModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.Title) + "\n\n")

	for i, f := range m.fields {
		label := f.spec.Label
		if f.spec.Required {
			label += " *"
		}
		labelStyle := Styles.Label
		if i == m.focus {
			labelStyle = Styles.Selected
		}
		b.WriteString(labelStyle.Render(label) + "\n")

		switch f.spec.Kind {
		case education.KindSelect:
			line := "  " + f.option + "  "
			if i == m.focus {
				line = "◀ " + f.option + " ▶"
			}
			b.WriteString(Styles.Normal.Render(line) + "\n")
		default:
			b.WriteString(f.input.View() + "\n")
		}

		if msg, ok := m.errs[f.spec.Name]; ok {
			b.WriteString(Styles.FieldError.Render(msg) + "\n")
		}
	}

	b.WriteString("\n" + Styles.Hint.Render("tab/↑↓: move  ◀▶: choose  Ctrl+S: save  Esc: cancel"))
	return Styles.Box.Render(b.String())
}
