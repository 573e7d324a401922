// Package styles holds the lipgloss styles used by command output
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tramo/internal/config"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	HeaderStyle   lipgloss.Style // grid header row

	// Chart styles
	TaskBarStyle        lipgloss.Style
	WorkPackageBarStyle lipgloss.Style
	SummaryStyle        lipgloss.Style
)

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	TaskBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TaskBar))

	WorkPackageBarStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.WorkPackageBar))

	SummaryStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Summary))
}
