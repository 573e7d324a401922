// Package tui implements the terminal chart editor: a grid of tasks against
// periods with a summary row, edited in place with single-key commands.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/thenoetrevino/tramo/internal/config"
	"github.com/thenoetrevino/tramo/internal/models"
	projectservice "github.com/thenoetrevino/tramo/internal/services/project"
	"github.com/thenoetrevino/tramo/internal/tui/components"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

// Rows taken by everything around the task rows: title, grid header,
// summary row, input line, status bar and key help.
const reservedHeight = 6

// Model represents the application state for the TUI
type Model struct {
	Ctx     context.Context
	Config  *config.Config
	Session projectservice.Service

	UiState           *state.UIState
	InputState        *state.InputState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	help help.Model
	keys keyMap

	// copyToClipboard is swapped out in tests
	copyToClipboard func(string) error
}

// InitialModel creates the editor around an open session
func InitialModel(ctx context.Context, session projectservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	return Model{
		Ctx:               ctx,
		Config:            cfg,
		Session:           session,
		UiState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		help:              help.New(),
		keys:              newKeyMap(cfg.KeyMappings),
		copyToClipboard:   clipboard.WriteAll,
	}
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// rowCount is the number of selectable rows: every task plus the trailing
// blank row used to enter a new task
func (m Model) rowCount() int {
	return m.Session.Table().Len() + 1
}

// selectedTask returns the selected row index and whether it holds a task
func (m Model) selectedTask() (int, models.Task, bool) {
	index := m.UiState.SelectedRow()
	task, err := m.Session.Table().Task(index)
	if err != nil {
		return index, models.Task{}, false
	}
	return index, task, true
}

// gridRows is the number of task rows that fit the window
func (m Model) gridRows() int {
	return max(m.UiState.Height()-reservedHeight, 1)
}

// visiblePeriods is the number of period columns that fit the window
func (m Model) visiblePeriods() int {
	return components.ComputeGridLayout(m.Session.Project(), m.UiState.Width()).Periods
}

// syncViewport keeps the selection and both scroll offsets valid after the
// table, the project or the window changed
func (m *Model) syncViewport() {
	m.UiState.ClampSelection(m.rowCount())
	m.UiState.EnsureRowVisible(m.gridRows())
	m.UiState.ScrollPeriods(0, m.Session.Table().Duration(), m.visiblePeriods())
}
