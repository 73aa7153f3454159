package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"edudesk/internal/education"
)

// handleRecordsLoaded stores the fetched list and stops the loading state.
func (a *appModelAdapter) handleRecordsLoaded(msg RecordsLoadedMsg) (tea.Model, tea.Cmd) {
	a.Page.Records = msg.Records
	a.Page.IsLoading = false
	a.Page.LoadErr = ""
	if a.Page.Cursor >= len(msg.Records) {
		a.Page.Cursor = 0
	}
	return a, nil
}

// handleLoadFailed logs the cause and switches the page to the full
// error state. No retry is scheduled; the r key rebuilds the page.
func (a *appModelAdapter) handleLoadFailed(msg LoadFailedMsg) (tea.Model, tea.Cmd) {
	a.Logger.Error("load education records", "err", msg.Err)
	a.Page.IsLoading = false
	a.Page.LoadErr = LoadErrorText
	return a, nil
}

// handleSubmitRecord starts the add or update call for a validated
// form. The list is not touched until the server confirms.
func (a *appModelAdapter) handleSubmitRecord(msg SubmitRecordMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Status = ""
	a.StatusIsError = false
	a.IsUpdating = true
	if msg.ID == "" {
		return a, tea.Batch(a.saving.Tick, addEducationCmd(a.Client, msg.Form))
	}
	return a, tea.Batch(a.saving.Tick, updateEducationCmd(a.Client, msg.ID, msg.Form))
}

// handleDeleteRecord starts the delete call after confirmation.
func (a *appModelAdapter) handleDeleteRecord(msg DeleteRecordMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Status = ""
	a.StatusIsError = false
	a.IsUpdating = true
	return a, tea.Batch(a.saving.Tick, deleteEducationCmd(a.Client, msg.ID))
}

// handleRecordAdded appends the server's record to the list.
func (a *appModelAdapter) handleRecordAdded(msg RecordAddedMsg) (tea.Model, tea.Cmd) {
	a.IsUpdating = false
	a.Page.Records = append(a.Page.Records, msg.Record)
	a.Status = "Education record added"
	a.StatusIsError = false
	return a, nil
}

// handleRecordUpdated replaces exactly the matching record, order
// preserved.
func (a *appModelAdapter) handleRecordUpdated(msg RecordUpdatedMsg) (tea.Model, tea.Cmd) {
	a.IsUpdating = false
	a.Page.Records = education.ReplaceByID(a.Page.Records, msg.Record)
	a.Status = "Education record updated"
	a.StatusIsError = false
	return a, nil
}

// handleRecordDeleted removes exactly the matching record.
func (a *appModelAdapter) handleRecordDeleted(msg RecordDeletedMsg) (tea.Model, tea.Cmd) {
	a.IsUpdating = false
	a.Page.Records = education.RemoveByID(a.Page.Records, msg.ID)
	if a.Page.Cursor >= len(a.Page.Records) && a.Page.Cursor > 0 {
		a.Page.Cursor--
	}
	a.Status = "Education record deleted"
	a.StatusIsError = false
	return a, nil
}

// handleMutationFailed logs the cause and shows the operation's fixed
// message as a banner. The already-rendered list stays.
func (a *appModelAdapter) handleMutationFailed(text string, err error) (tea.Model, tea.Cmd) {
	a.Logger.Error("education mutation failed", "err", err)
	a.IsUpdating = false
	a.Status = text
	a.StatusIsError = true
	return a, nil
}

// handleShowAddRecord opens the record form empty.
func (a *appModelAdapter) handleShowAddRecord() (tea.Model, tea.Cmd) {
	modal := NewRecordFormModal("Add education", "", education.FormData{})
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleShowEditRecord opens the record form prefilled from the
// selected record.
func (a *appModelAdapter) handleShowEditRecord() (tea.Model, tea.Cmd) {
	rec := a.Page.SelectedRecord()
	if rec == nil {
		return a, nil
	}
	modal := NewRecordFormModal("Edit education", rec.ID, education.FormFromRecord(*rec))
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleShowDeleteRecord opens the delete confirmation for the selected
// record.
func (a *appModelAdapter) handleShowDeleteRecord() (tea.Model, tea.Cmd) {
	rec := a.Page.SelectedRecord()
	if rec == nil {
		return a, nil
	}
	modal := NewDeleteRecordConfirmModal(*rec)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, nil
}

// handleReload rebuilds the whole model from scratch and re-runs Init,
// the terminal analog of a full page reload. All state is discarded.
func (a *appModelAdapter) handleReload() (tea.Model, tea.Cmd) {
	*a.AppModel = *NewAppModel(a.Client, a.Logger)
	return a, a.Init()
}
