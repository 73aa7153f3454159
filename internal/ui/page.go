package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"edudesk/internal/education"
)

// EducationPageView renders the education record list: one card per
// record with a verification badge and the detail grid, or the
// loading / load-error / empty states.
type EducationPageView struct {
	Records   []education.Record
	Cursor    int
	IsLoading bool
	// LoadErr is the fixed load-error message; non-empty suppresses the
	// list entirely.
	LoadErr string

	spinner spinner.Model
	width   int
}

// Ensure EducationPageView implements View.
var _ View = (*EducationPageView)(nil)

// NewEducationPageView creates the page view. Records arrive via
// RecordsLoadedMsg.
func NewEducationPageView() *EducationPageView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &EducationPageView{spinner: s}
}

// SelectedRecord returns the record under the cursor, or nil.
func (p *EducationPageView) SelectedRecord() *education.Record {
	if p.Cursor < 0 || p.Cursor >= len(p.Records) {
		return nil
	}
	return &p.Records[p.Cursor]
}

// Init implements View.
func (p *EducationPageView) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements View. Handles cursor movement and the loading spinner.
func (p *EducationPageView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil
	case spinner.TickMsg:
		if p.IsLoading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if p.Cursor < len(p.Records)-1 {
				p.Cursor++
			}
		case "k", "up":
			if p.Cursor > 0 {
				p.Cursor--
			}
		}
	}
	return p, nil
}

// View implements View.
func (p *EducationPageView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Education") + "\n\n")

	switch {
	case p.IsLoading:
		b.WriteString(p.spinner.View() + " Loading education records...\n")
	case p.LoadErr != "":
		b.WriteString(Styles.ErrorPage.Render(p.LoadErr) + "\n")
		b.WriteString(Styles.Muted.Render("Press r to reload the page.") + "\n")
	case len(p.Records) == 0:
		b.WriteString(Styles.Empty.Render("No education records yet. Press a to add one.") + "\n")
	default:
		for i, rec := range p.Records {
			b.WriteString(p.renderCard(rec, i == p.Cursor) + "\n")
		}
	}
	return b.String()
}

// detailRows is the label/value grid below the card title. Degree is
// the title itself, so seven rows remain.
func detailRows(d education.Details) [][2]string {
	return [][2]string{
		{"Institution", d.Institution.CurrentValue},
		{"Year", d.Year.CurrentValue},
		{"GPA", d.GPA.CurrentValue},
		{"Major", d.Major.CurrentValue},
		{"Minor", d.Minor.CurrentValue},
		{"Relevant courses", d.RelevantCourses.CurrentValue},
		{"Honors", d.Honors.CurrentValue},
	}
}

func (p *EducationPageView) renderCard(rec education.Record, selected bool) string {
	var b strings.Builder

	title := rec.EducationDetails.Degree.CurrentValue
	if title == "" {
		title = "(no degree)"
	}
	badge := Styles.BadgePending.Render("● Pending")
	if rec.IsVerified {
		badge = Styles.BadgeVerified.Render("✓ Verified")
	}
	b.WriteString(Styles.Title.Render(title) + "  " + badge + "\n")

	if rec.LastVerified != nil {
		b.WriteString(Styles.Muted.Render("Verified on "+rec.LastVerified.Format("2 Jan 2006")) + "\n")
	}
	if rec.Remark != nil && *rec.Remark != "" {
		b.WriteString(Styles.Muted.Render("Remark: "+*rec.Remark) + "\n")
	}

	for _, row := range detailRows(rec.EducationDetails) {
		value := row[1]
		if value == "" {
			value = "—"
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			Styles.Label.Render(fmt.Sprintf("%-17s", row[0])),
			Styles.Normal.Render(value)))
	}

	card := Styles.Card
	if selected {
		card = Styles.CardSelected
	}
	return card.Render(strings.TrimRight(b.String(), "\n"))
}
