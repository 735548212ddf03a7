package diagnostic

import "github.com/charmbracelet/lipgloss"

var (
	errorColor   = lipgloss.Color("#CC3333") // Dark red
	warningColor = lipgloss.Color("#FF8800") // Orange
	goodColor    = lipgloss.Color("#228B22") // Forest green
	infoColor    = lipgloss.Color("#4682B4") // Steel blue
	mutedColor   = lipgloss.Color("#888888") // Medium gray
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(goodColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	sectionStyle = lipgloss.NewStyle().
			Foreground(infoColor).
			Bold(true).
			Underline(true)
)

func severityStyle(s Severity) lipgloss.Style {
	switch s {
	case Error:
		return errorStyle
	case Warning:
		return warningStyle
	}
	return goodStyle
}
