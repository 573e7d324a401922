package tui

import (
	"fmt"
	"log/slog"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tramo/internal/services/table"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

// ============================================================================
// INPUT MODE HANDLERS
// ============================================================================

// handleStartInput opens the inline input for a cell of the selected row,
// prefilled with the cell's current value
func (m Model) handleStartInput(purpose state.InputPurpose) (tea.Model, tea.Cmd) {
	_, task, _ := m.selectedTask()

	switch purpose {
	case state.StartInput:
		return m.startInput(purpose, "Start period:", periodValue(task.HasStart(), task.Start))
	case state.EndInput:
		return m.startInput(purpose, "End period:", periodValue(task.HasEnd(), task.End))
	default:
		return m.startInput(state.RenameInput, "Task name:", task.Name)
	}
}

func (m Model) startInput(purpose state.InputPurpose, prompt, value string) (tea.Model, tea.Cmd) {
	cmd := m.InputState.Start(purpose, prompt, value)
	m.UiState.SetMode(state.InputMode)
	return m, cmd
}

// handleInputMode handles text entry; enter commits and esc cancels
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleInputConfirm()
	case "esc":
		return m.handleInputCancel()
	}

	var cmd tea.Cmd
	m.InputState.Input, cmd = m.InputState.Input.Update(msg)
	return m, cmd
}

func (m Model) handleInputCancel() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)
	m.InputState.Clear()
	return m, nil
}

// handleInputConfirm applies the typed value to the cell it was opened for
func (m Model) handleInputConfirm() (tea.Model, tea.Cmd) {
	purpose := m.InputState.Purpose
	value := m.InputState.Value()
	changed := m.InputState.HasChanges()
	_, _, onTask := m.selectedTask()

	m.UiState.SetMode(state.NormalMode)
	m.InputState.Clear()

	switch purpose {
	case state.SavePathInput:
		if value == "" {
			m.NotificationState.Add(state.LevelError, "No file name given")
			return m, nil
		}
		m.save(value)

	case state.RenameInput:
		if !changed || (value == "" && !onTask) {
			return m, nil
		}
		m.applyEdit(func(t *table.Table, index int) error {
			return t.SetName(index, value)
		})

	case state.StartInput, state.EndInput:
		if value == "" || !changed {
			return m, nil
		}
		period, err := strconv.Atoi(value)
		if err != nil {
			m.NotificationState.Add(state.LevelError, fmt.Sprintf("%q is not a period number", value))
			return m, nil
		}
		m.applyEdit(func(t *table.Table, index int) error {
			if purpose == state.StartInput {
				return t.SetStart(index, period)
			}
			return t.SetEnd(index, period)
		})
	}

	return m, nil
}

// applyEdit applies fn to the selected row. Editing the trailing blank row
// first turns it into a real row, which is dropped again if the edit is
// rejected, so a failed entry never leaves an empty task behind.
func (m *Model) applyEdit(fn func(t *table.Table, index int) error) bool {
	t := m.Session.Table()
	index := m.UiState.SelectedRow()

	created := false
	if index >= t.Len() {
		i, err := t.InsertBlankAfter(t.Len() - 1)
		if err != nil {
			m.NotificationState.Add(state.LevelError, err.Error())
			return false
		}
		index, created = i, true
	}

	if err := fn(t, index); err != nil {
		if created {
			if rmErr := t.Remove(index); rmErr != nil {
				slog.Error("failed to drop row after rejected edit", "row", index, "error", rmErr)
			}
		}
		slog.Debug("edit rejected", "row", index, "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return false
	}

	m.UiState.SetSelectedRow(index)
	m.syncViewport()
	return true
}

func periodValue(set bool, period int) string {
	if !set {
		return ""
	}
	return strconv.Itoa(period)
}
