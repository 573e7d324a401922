package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

func TestRender(t *testing.T) {
	errView := Render(state.Notification{Level: state.LevelError, Message: "end 12 is after period 10"})
	assert.Contains(t, ansi.Strip(errView), "✕ Error")
	assert.Contains(t, ansi.Strip(errView), "end 12 is after period 10")
	assert.Equal(t, 4, lipgloss.Height(errView), "border, header, message, border")

	infoView := Render(state.Notification{Level: state.LevelInfo, Message: "Saved plan.csv"})
	assert.Contains(t, ansi.Strip(infoView), "✓ Saved plan.csv")
	assert.Equal(t, 3, lipgloss.Height(infoView), "confirmations take one line")
}

func TestRender_WrapsLongErrors(t *testing.T) {
	msg := strings.Repeat("period out of range ", 8)
	view := Render(state.Notification{Level: state.LevelError, Message: msg})

	// border and padding add four columns
	assert.LessOrEqual(t, lipgloss.Width(view), maxMessageWidth+4)
	assert.Greater(t, lipgloss.Height(view), 4)
}
