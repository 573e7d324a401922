// Package notifications draws the boxes stacked in the top-right corner of
// the editor: confirmations of saves and exports, and edits that were
// rejected or failed.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tramo/internal/tui/state"
	"github.com/thenoetrevino/tramo/internal/tui/theme"
)

// maxMessageWidth wraps long validation messages
const maxMessageWidth = 48

type banner struct {
	label string
	fg    string
	bg    string
}

func bannerFor(level state.NotificationLevel) banner {
	if level == state.LevelError {
		return banner{label: "✕ Error", fg: theme.ErrorFg, bg: theme.ErrorBg}
	}
	return banner{label: "✓", fg: theme.InfoFg, bg: theme.InfoBg}
}

// Render draws n. Confirmations fit on one line after a check mark; errors
// get a header line above the message.
func Render(n state.Notification) string {
	b := bannerFor(n.Level)
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(b.fg))

	var content string
	if n.Level == state.LevelError {
		width := min(max(lipgloss.Width(n.Message), lipgloss.Width(b.label)), maxMessageWidth)
		content = lipgloss.JoinVertical(lipgloss.Left,
			text.Bold(true).Width(width).Render(b.label),
			text.Width(width).Render(n.Message),
		)
	} else {
		content = text.Render(b.label + " " + n.Message)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.bg)).
		Background(lipgloss.Color(b.bg)).
		Padding(0, 1).
		Render(content)
}
