package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tramo/internal/export"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/services/table"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

// ============================================================================
// NORMAL MODE
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevRow, "up":
		return m.handleNavigate(-1)
	case km.NextRow, "down":
		return m.handleNavigate(1)
	case km.ScrollLeft, "left":
		return m.handleScroll(-1)
	case km.ScrollRight, "right":
		return m.handleScroll(1)
	case km.InsertRow:
		return m.handleInsertRow()
	case km.RenameTask, "enter":
		return m.handleStartInput(state.RenameInput)
	case km.SetStart:
		return m.handleStartInput(state.StartInput)
	case km.SetEnd:
		return m.handleStartInput(state.EndInput)
	case km.StartEarlier:
		return m.handleResize(models.EdgeStart, -1)
	case km.StartLater:
		return m.handleResize(models.EdgeStart, 1)
	case km.EndEarlier:
		return m.handleResize(models.EdgeEnd, -1)
	case km.EndLater:
		return m.handleResize(models.EdgeEnd, 1)
	case km.ToggleWorkPackage:
		return m.handleToggleWorkPackage()
	case km.RemoveRow:
		return m.handleRemoveRow()
	case km.MoveRowUp:
		return m.handleMoveRow(-1)
	case km.MoveRowDown:
		return m.handleMoveRow(1)
	case km.Save:
		return m.handleSave()
	case km.Export:
		return m.handleExport()
	case km.YankCSV:
		return m.handleYankCSV()
	case km.NewProject:
		return m.handleNewProject()
	case km.ChangeDuration:
		return m.handleChangeDuration()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.Session.Dirty() {
		return m.openQuitForm()
	}
	return m, tea.Quit
}

func (m Model) handleNavigate(delta int) (tea.Model, tea.Cmd) {
	row := m.UiState.SelectedRow() + delta
	switch {
	case row < 0:
		m.NotificationState.Add(state.LevelInfo, "Already at the first row")
		return m, nil
	case row >= m.rowCount():
		m.NotificationState.Add(state.LevelInfo, "Already at the last row")
		return m, nil
	}
	m.UiState.SetSelectedRow(row)
	m.UiState.EnsureRowVisible(m.gridRows())
	return m, nil
}

func (m Model) handleScroll(delta int) (tea.Model, tea.Cmd) {
	m.UiState.ScrollPeriods(delta, m.Session.Table().Duration(), m.visiblePeriods())
	return m, nil
}

// handleInsertRow adds a blank row below the selection and starts naming it.
// On a row that is already blank it just starts naming that row.
func (m Model) handleInsertRow() (tea.Model, tea.Cmd) {
	if _, task, ok := m.selectedTask(); ok && task.IsBlank() {
		return m.handleStartInput(state.RenameInput)
	}

	t := m.Session.Table()
	after := min(m.UiState.SelectedRow(), t.Len()-1)
	index, err := t.InsertBlankAfter(after)
	if err != nil {
		slog.Error("insert row failed", "after", after, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return m, nil
	}
	m.UiState.SetSelectedRow(index)
	m.UiState.EnsureRowVisible(m.gridRows())
	return m.handleStartInput(state.RenameInput)
}

func (m Model) handleResize(edge models.Edge, delta int) (tea.Model, tea.Cmd) {
	m.withSelectedTask(func(t *table.Table, index int) error {
		return t.ResizeEdge(index, edge, delta)
	})
	return m, nil
}

func (m Model) handleToggleWorkPackage() (tea.Model, tea.Cmd) {
	m.withSelectedTask(func(t *table.Table, index int) error {
		return t.ToggleWorkPackage(index)
	})
	return m, nil
}

func (m Model) handleRemoveRow() (tea.Model, tea.Cmd) {
	if m.withSelectedTask(func(t *table.Table, index int) error { return t.Remove(index) }) {
		m.syncViewport()
	}
	return m, nil
}

func (m Model) handleMoveRow(delta int) (tea.Model, tea.Cmd) {
	moved := m.withSelectedTask(func(t *table.Table, index int) error {
		if delta < 0 {
			return t.MoveUp(index)
		}
		return t.MoveDown(index)
	})
	if moved {
		m.UiState.SetSelectedRow(m.UiState.SelectedRow() + delta)
		m.UiState.EnsureRowVisible(m.gridRows())
	}
	return m, nil
}

func (m Model) handleSave() (tea.Model, tea.Cmd) {
	if m.Session.Path() == "" {
		return m.startInput(state.SavePathInput, "Save as:", "")
	}
	m.save("")
	return m, nil
}

// save writes the project to path, or to the session's file when path is
// empty
func (m *Model) save(path string) {
	if err := m.Session.Save(path); err != nil {
		slog.Error("save failed", "path", path, "error", err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.NotificationState.Add(state.LevelInfo, "Saved "+filepath.Base(m.Session.Path()))
}

func (m Model) handleYankCSV() (tea.Model, tea.Cmd) {
	data, err := export.CSV(m.Session.Project())
	if err != nil {
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Export failed: %v", err))
		return m, nil
	}
	if err := m.copyToClipboard(string(data)); err != nil {
		slog.Warn("clipboard unavailable", "error", err)
		m.NotificationState.Add(state.LevelError, "Clipboard unavailable")
		return m, nil
	}
	m.NotificationState.Add(state.LevelInfo, "Copied export CSV to the clipboard")
	return m, nil
}

// withSelectedTask applies fn to the selected task. A rejected edit leaves
// the table unchanged and is reported as an error notification.
func (m *Model) withSelectedTask(fn func(t *table.Table, index int) error) bool {
	index, _, ok := m.selectedTask()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No task on this row")
		return false
	}
	if err := fn(m.Session.Table(), index); err != nil {
		slog.Debug("edit rejected", "row", index, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return false
	}
	return true
}
