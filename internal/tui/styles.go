package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tramo/internal/tui/theme"
)

// Styles are built on use so they follow theme.Init

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

// formBoxStyle frames the huh dialogs
func formBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)
}

// helpBoxStyle frames the key reference
func helpBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Title)).
		Padding(1, 2)
}

// inputStyle renders the inline input line under the grid
func inputStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)
}
