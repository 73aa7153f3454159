package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"edudesk/internal/education"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // Optional warning details
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteRecordConfirmModal creates the confirmation shown before
// deleting an education record.
func NewDeleteRecordConfirmModal(rec education.Record) *ConfirmModal {
	d := rec.EducationDetails
	label := fmt.Sprintf("%s at %s (%s)",
		d.Degree.CurrentValue, d.Institution.CurrentValue, d.Year.CurrentValue)
	id := rec.ID
	return NewConfirmModal(
		"Delete education record?",
		label,
		func() tea.Msg { return DeleteRecordMsg{ID: id} },
	).WithDetails("This cannot be undone")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += m.Label
	if m.Details != "" {
		content += "\n" + Styles.Muted.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.BoxDanger.Render(content)
}
