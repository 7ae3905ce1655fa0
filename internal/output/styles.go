package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "modified" status and warnings.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for the "missing" status.
	colorRed = lipgloss.Color("196")

	// colorBoldRed is used for failures (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs and section headings.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (tree connectors, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles non-fatal warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// File status values used by plan and diff output.
const (
	StatusCreated   = "created"
	StatusModified  = "modified"
	StatusUnchanged = "unchanged"
	StatusMissing   = "missing"
	StatusExtra     = "extra"
	statusFailed    = "failed"
)

// statusStyle returns the style for a file status. Unknown statuses are unstyled.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusModified:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusMissing:
		return lipgloss.NewStyle().Foreground(colorRed)
	case StatusExtra:
		return lipgloss.NewStyle().Foreground(ColorCyan)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 40

// FormatFileLine renders a project-relative path followed by a right-aligned,
// color-coded status.
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	line := StyleDim.Render("f:") + StyleNoun.Render(path)
	for i := 0; i < padding; i++ {
		line += " "
	}
	return line + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a warning marker with a message.
func FormatWarning(msg string) string {
	return StyleWarning.Render("⚠") + " " + msg
}
