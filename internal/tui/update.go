package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.handleWindowResize(size)
	}

	// Forms need all messages, not just key presses
	if m.UiState.Mode() == state.FormMode {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.NormalMode:
			return m.handleNormalMode(msg)
		case state.InputMode:
			return m.handleInputMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		}
	}

	if m.UiState.Mode() == state.InputMode {
		var cmd tea.Cmd
		m.InputState.Input, cmd = m.InputState.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.UiState.SetWindowSize(msg.Width, msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)
	m.help.SetWidth(msg.Width)
	m.syncViewport()
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
