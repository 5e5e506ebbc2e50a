package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles
	ColorHighlight = "205" // Magenta - for the cursor row, borders
	ColorDanger    = "196" // Red - for the page title and delete action
	ColorMuted     = "241" // Gray - for disabled controls, hints
	ColorText      = "252" // Light gray - for normal rows
	ColorDone      = "78"  // Green - for completed todos
)

// Styles contains shared style definitions used by the list and the modal.
var Styles = struct {
	Title       lipgloss.Style // "Todos" header
	ModalTitle  lipgloss.Style // "Todo Details" header
	ModalBox    lipgloss.Style // Details overlay box
	Row         lipgloss.Style // Unselected todo row
	RowSelected lipgloss.Style // Cursor row
	Done        lipgloss.Style // Completed marker
	Delete      lipgloss.Style // [Delete] action
	Button      lipgloss.Style // Enabled Previous/Next
	ButtonOff   lipgloss.Style // Disabled Previous/Next
	Label       lipgloss.Style // Field label in the modal
	Hint        lipgloss.Style // Help text
	Empty       lipgloss.Style // Empty state text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ModalBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Width(56),
	Row: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	RowSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Done: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDone)),
	Delete: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	ButtonOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true),
	Label: lipgloss.NewStyle().
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
