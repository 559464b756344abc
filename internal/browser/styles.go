package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ptable/internal/version"
)

// AppName is shown in the browser header.
const AppName = "PERIODIC TABLE BROWSER"

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 120
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	HighlightColor = lipgloss.Color("#43BF6D") // Green
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	// FilterStyle shows the active category filter
	FilterStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	DetailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HighlightColor).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0, 0, 0)
)

// Swatch renders a small colored block for a category color.
func Swatch(color string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Render("  ")
}

// headerContent returns the app name with the build version.
func headerContent() string {
	return TitleStyle.Render(AppName) + "  " + SubtleStyle.Render("v"+version.Version)
}
