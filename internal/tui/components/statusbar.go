package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tramo/internal/tui/theme"
)

// StatusBarProps holds what the status bar reports
type StatusBarProps struct {
	Width    int
	Mode     string
	File     string
	Dirty    bool
	Duration int
	Tasks    int
	Peak     int

	// FirstPeriod and LastPeriod bound the visible period columns
	FirstPeriod int
	LastPeriod  int
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left: mode, file name and the unsaved marker.
// Right: project size, peak load and the help hint.
func RenderStatusBar(props StatusBarProps) string {
	file := props.File
	if file == "" {
		file = "[no file]"
	}
	if props.Dirty {
		file += " [+]"
	}

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(theme.Accent)).
		Padding(0, 1)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	periods := fmt.Sprintf("%d periods", props.Duration)
	if props.FirstPeriod > 1 || props.LastPeriod < props.Duration {
		periods = fmt.Sprintf("periods %d-%d of %d", props.FirstPeriod, props.LastPeriod, props.Duration)
	}

	leftRendered := modeStyle.Render(props.Mode) + style.Render(" "+file)
	rightRendered := style.Render(fmt.Sprintf("%s · %d tasks · peak %d · press ? for help",
		periods, props.Tasks, props.Peak))

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
