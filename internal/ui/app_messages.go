package ui

import "edudesk/internal/education"

// RecordsLoadedMsg is sent when the education list has been fetched.
type RecordsLoadedMsg struct {
	Records []education.Record
}

// LoadFailedMsg is sent when the initial fetch failed. The page shows
// the fixed load-error message and suppresses the list.
type LoadFailedMsg struct {
	Err error
}

// RecordAddedMsg carries the server's copy of a created record.
type RecordAddedMsg struct {
	Record education.Record
}

// RecordUpdatedMsg carries the server's copy of an updated record.
type RecordUpdatedMsg struct {
	Record education.Record
}

// RecordDeletedMsg confirms a delete by id.
type RecordDeletedMsg struct {
	ID string
}

// AddFailedMsg is sent when a create call failed.
type AddFailedMsg struct {
	Err error
}

// UpdateFailedMsg is sent when an update call failed.
type UpdateFailedMsg struct {
	Err error
}

// DeleteFailedMsg is sent when a delete call failed.
type DeleteFailedMsg struct {
	Err error
}

// SubmitRecordMsg is emitted by the record form after local validation
// passed. An empty ID means add; otherwise update that record.
type SubmitRecordMsg struct {
	ID   string
	Form education.FormData
}

// DeleteRecordMsg is emitted by the delete confirmation modal.
type DeleteRecordMsg struct {
	ID string
}

// ShowAddRecordMsg opens the record form empty.
type ShowAddRecordMsg struct{}

// ShowEditRecordMsg opens the record form prefilled from the selected record.
type ShowEditRecordMsg struct{}

// ShowDeleteRecordMsg opens the delete confirmation for the selected record.
type ShowDeleteRecordMsg struct{}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// ReloadMsg rebuilds the whole page from scratch, the terminal analog
// of a full page reload.
type ReloadMsg struct{}
