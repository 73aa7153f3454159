package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"edudesk/internal/education"
)

// Fixed user-facing error strings, one per operation. Remote failures
// surface only as these; the cause goes to the log.
const (
	LoadErrorText   = "Could not load your education records."
	AddErrorText    = "Could not add the education record. Please try again."
	UpdateErrorText = "Could not update the education record. Please try again."
	DeleteErrorText = "Could not delete the education record. Please try again."
)

// DataClient is the remote contract the page consumes. api.Client
// implements it; tests substitute a stub.
type DataClient interface {
	GetMyEducation(ctx context.Context) ([]education.Record, error)
	AddEducation(ctx context.Context, payload education.Payload) (*education.Record, error)
	UpdateEducation(ctx context.Context, id string, payload education.Payload) (*education.Record, error)
	DeleteEducation(ctx context.Context, id string) error
}

// AppModel is the education page controller. It owns the local record
// list (a mirror of server state, mutated only after a confirmed call),
// the modal overlay stack, and the status banner.
type AppModel struct {
	Page     *EducationPageView
	Overlays OverlayStack

	Client DataClient
	Logger *slog.Logger

	// IsUpdating is true while an add/update/delete call is in flight.
	// Mutating keys are inert for the duration.
	IsUpdating bool

	Status        string
	StatusIsError bool

	saving spinner.Model
}

// NewAppModel creates the page controller. The list loads on Init.
func NewAppModel(client DataClient, logger *slog.Logger) *AppModel {
	if logger == nil {
		logger = slog.Default()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &AppModel{
		Page:   NewEducationPageView(),
		Client: client,
		Logger: logger,
		saving: s,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model. The one-time load on mount.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Page.IsLoading = true
	return tea.Batch(a.Page.Init(), loadEducationCmd(a.Client))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RecordsLoadedMsg:
		return a.handleRecordsLoaded(msg)
	case LoadFailedMsg:
		return a.handleLoadFailed(msg)
	case RecordAddedMsg:
		return a.handleRecordAdded(msg)
	case RecordUpdatedMsg:
		return a.handleRecordUpdated(msg)
	case RecordDeletedMsg:
		return a.handleRecordDeleted(msg)
	case AddFailedMsg:
		return a.handleMutationFailed(AddErrorText, msg.Err)
	case UpdateFailedMsg:
		return a.handleMutationFailed(UpdateErrorText, msg.Err)
	case DeleteFailedMsg:
		return a.handleMutationFailed(DeleteErrorText, msg.Err)
	case SubmitRecordMsg:
		return a.handleSubmitRecord(msg)
	case DeleteRecordMsg:
		return a.handleDeleteRecord(msg)
	case ShowAddRecordMsg:
		return a.handleShowAddRecord()
	case ShowEditRecordMsg:
		return a.handleShowEditRecord()
	case ShowDeleteRecordMsg:
		return a.handleShowDeleteRecord()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case ReloadMsg:
		return a.handleReload()
	case spinner.TickMsg:
		var cmds []tea.Cmd
		if a.IsUpdating {
			var cmd tea.Cmd
			a.saving, cmd = a.saving.Update(msg)
			cmds = append(cmds, cmd)
		}
		v, cmd := a.Page.Update(msg)
		a.setPage(v)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	v, cmd := a.Page.Update(msg)
	a.setPage(v)
	return a, cmd
}

// handleKey routes key input: the top overlay first, then page-level
// bindings, then list navigation.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "r":
		return a, func() tea.Msg { return ReloadMsg{} }
	case "a":
		if a.canMutate() {
			return a, func() tea.Msg { return ShowAddRecordMsg{} }
		}
		return a, nil
	case "e":
		if a.canMutate() && a.Page.SelectedRecord() != nil {
			return a, func() tea.Msg { return ShowEditRecordMsg{} }
		}
		return a, nil
	case "d":
		if a.canMutate() && a.Page.SelectedRecord() != nil {
			return a, func() tea.Msg { return ShowDeleteRecordMsg{} }
		}
		return a, nil
	}

	v, cmd := a.Page.Update(msg)
	a.setPage(v)
	return a, cmd
}

// canMutate reports whether mutating controls are interactive: no call
// in flight, list loaded, no load failure.
func (a *appModelAdapter) canMutate() bool {
	return !a.IsUpdating && !a.Page.IsLoading && a.Page.LoadErr == ""
}

// View implements tea.Model. The top overlay renders instead of the
// page; mutation failures render as a banner above the list.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}

	out := ""
	if a.Status != "" {
		if a.StatusIsError {
			out += Styles.BannerError.Render(a.Status) + "\n"
		} else {
			out += Styles.Banner.Render(a.Status) + "\n"
		}
	}
	out += a.Page.View()
	out += "\n" + a.footer()
	return out
}

func (a *appModelAdapter) footer() string {
	if a.IsUpdating {
		return Styles.Hint.Render("saving ") + a.saving.View()
	}
	if a.Page.LoadErr != "" {
		return Styles.Hint.Render("r reload · q quit")
	}
	return Styles.Hint.Render("a add · e edit · d delete · r reload · q quit")
}

func (a *appModelAdapter) setPage(v View) {
	if p, ok := v.(*EducationPageView); ok {
		a.Page = p
	}
}
