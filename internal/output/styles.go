package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: module paths, file names,
	// project names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "converted" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "cleaned" status (destructive).
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module paths, file names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (building, cleaning, watching).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, counts).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants used by the build report.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
	StatusCleaned   = "cleaned"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusConverted:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusCleaned:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}
