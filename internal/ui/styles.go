package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for pending state, warnings
	ColorOK        = "42"  // Green - for verified state
)

// Styles contains shared style definitions used across the page and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - page and modal titles
	TitleWarning lipgloss.Style // Bold danger color - warning titles

	Card         lipgloss.Style // One education record
	CardSelected lipgloss.Style // The record under the cursor
	Box          lipgloss.Style // Standard modal box
	BoxDanger    lipgloss.Style // Warning/error modal box

	BadgeVerified lipgloss.Style // "Verified" record badge
	BadgePending  lipgloss.Style // "Pending" record badge
	Banner        lipgloss.Style // Status banner (info)
	BannerError   lipgloss.Style // Status banner (mutation failure)
	ErrorPage     lipgloss.Style // Full-page load error text

	Selected   lipgloss.Style // Highlighted text
	Muted      lipgloss.Style // Dimmed text
	Normal     lipgloss.Style // Normal text
	Hint       lipgloss.Style // Help/hint text
	Empty      lipgloss.Style // Empty state text (muted, italic)
	Label      lipgloss.Style // Field labels in the card grid
	FieldError lipgloss.Style // Validation messages inside the form
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		MarginBottom(1),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		MarginBottom(1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BadgeVerified: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorOK)),
	BadgePending: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Banner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	BannerError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	ErrorPage: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	FieldError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
