package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"edudesk/internal/education"
)

// typeInto sends runes to the modal's focused field.
func typeInto(m View, s string) View {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestRecordForm_InvalidSaveStaysInModal(t *testing.T) {
	var m View = NewRecordFormModal("Add education", "", education.FormData{})

	// Degree defaults to the first option, institution and year are
	// blank: ctrl+s must not emit anything.
	m, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd != nil {
		t.Fatal("invalid form emitted a command")
	}

	view := m.View()
	if !strings.Contains(view, "Institution is required") {
		t.Error("missing institution violation in modal")
	}
	if !strings.Contains(view, "Year is required") {
		t.Error("missing year violation in modal")
	}
}

func TestRecordForm_ValidSaveEmitsTypedForm(t *testing.T) {
	var m View = NewRecordFormModal("Add education", "", education.FormData{})

	// Field order: degree (select), institution, year, then optionals.
	m, _ = m.Update(keyMsg("tab"))
	m = typeInto(m, "MIT")
	m, _ = m.Update(keyMsg("tab"))
	m = typeInto(m, "2024")

	m, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("valid form emitted nothing")
	}
	msg, ok := cmd().(SubmitRecordMsg)
	if !ok {
		t.Fatalf("expected SubmitRecordMsg, got %T", cmd())
	}
	if msg.ID != "" {
		t.Errorf("add form carries ID %q", msg.ID)
	}
	if msg.Form.Degree != education.Degrees[0] {
		t.Errorf("degree = %q, want default %q", msg.Form.Degree, education.Degrees[0])
	}
	if msg.Form.Institution != "MIT" || msg.Form.Year != "2024" {
		t.Errorf("form = %+v", msg.Form)
	}
	// Untouched optionals submit as empty strings.
	if msg.Form.GPA != "" || msg.Form.Honors != "" {
		t.Errorf("optionals not empty: %+v", msg.Form)
	}
	_ = m
}

func TestRecordForm_EnterOnLastFieldSaves(t *testing.T) {
	initial := education.FormData{Degree: "BTech", Institution: "MIT", Year: "2024"}
	var m View = NewRecordFormModal("Edit education", "e1", initial)

	// Walk focus to the last field, then Enter saves.
	for i := 0; i < len(education.FormFields())-1; i++ {
		m, _ = m.Update(keyMsg("tab"))
	}
	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter on last field emitted nothing")
	}
	msg, ok := cmd().(SubmitRecordMsg)
	if !ok {
		t.Fatalf("expected SubmitRecordMsg, got %T", cmd())
	}
	if msg.ID != "e1" {
		t.Errorf("edit form ID = %q, want e1", msg.ID)
	}
	_ = m
}

func TestRecordForm_SelectCyclesOptions(t *testing.T) {
	modal := NewRecordFormModal("Add education", "", education.FormData{})
	var m View = modal

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := modal.FormData().Degree; got != education.Degrees[1] {
		t.Errorf("after right: degree = %q, want %q", got, education.Degrees[1])
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	last := education.Degrees[len(education.Degrees)-1]
	if got := modal.FormData().Degree; got != last {
		t.Errorf("cycling left past start: degree = %q, want %q", got, last)
	}
	_ = m
}

func TestRecordForm_KeepsOutOfListDegreeUntilCycled(t *testing.T) {
	modal := NewRecordFormModal("Edit education", "e1", education.FormData{
		Degree: "BArch", Institution: "SPA", Year: "2018",
	})
	if got := modal.FormData().Degree; got != "BArch" {
		t.Fatalf("initial out-of-list degree = %q, want BArch", got)
	}

	var m View = modal
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := modal.FormData().Degree; got != education.Degrees[0] {
		t.Errorf("after cycling: degree = %q, want %q", got, education.Degrees[0])
	}
	_ = m
}

func TestConfirmModal_EscCancelsEnterConfirms(t *testing.T) {
	rec := record("e1", "BTech")

	var m View = NewDeleteRecordConfirmModal(rec)
	_, cmd := m.Update(keyMsg("esc"))
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("esc did not dismiss")
	}

	m = NewDeleteRecordConfirmModal(rec)
	_, cmd = m.Update(keyMsg("enter"))
	msg, ok := cmd().(DeleteRecordMsg)
	if !ok {
		t.Fatalf("expected DeleteRecordMsg, got %T", cmd())
	}
	if msg.ID != "e1" {
		t.Errorf("confirm bound to %q, want e1", msg.ID)
	}
}
