package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"edudesk/internal/education"
)

// loadEducationCmd returns a command that fetches the student's
// education records.
func loadEducationCmd(c DataClient) tea.Cmd {
	return func() tea.Msg {
		records, err := c.GetMyEducation(context.Background())
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return RecordsLoadedMsg{Records: records}
	}
}

// addEducationCmd returns a command that creates a record from the
// validated form. The form-to-payload transform happens here, so every
// write leaving the page carries null last_verified_values.
func addEducationCmd(c DataClient, form education.FormData) tea.Cmd {
	return func() tea.Msg {
		record, err := c.AddEducation(context.Background(), education.NewPayload(form))
		if err != nil {
			return AddFailedMsg{Err: err}
		}
		return RecordAddedMsg{Record: *record}
	}
}

// updateEducationCmd returns a command that updates a record by id from
// the validated form.
func updateEducationCmd(c DataClient, id string, form education.FormData) tea.Cmd {
	return func() tea.Msg {
		record, err := c.UpdateEducation(context.Background(), id, education.NewPayload(form))
		if err != nil {
			return UpdateFailedMsg{Err: err}
		}
		return RecordUpdatedMsg{Record: *record}
	}
}

// deleteEducationCmd returns a command that deletes a record by id.
func deleteEducationCmd(c DataClient, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteEducation(context.Background(), id); err != nil {
			return DeleteFailedMsg{Err: err}
		}
		return RecordDeletedMsg{ID: id}
	}
}
