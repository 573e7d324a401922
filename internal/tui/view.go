package tui

import (
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tramo/internal/summary"
	"github.com/thenoetrevino/tramo/internal/tui/components"
	"github.com/thenoetrevino/tramo/internal/tui/notifications"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.renderEditor())}

	switch m.UiState.Mode() {
	case state.FormMode:
		if layer := m.renderFormLayer(); layer != nil {
			layers = append(layers, layer)
		}
	case state.HelpMode:
		layers = append(layers, m.renderHelpLayer())
	}

	layers = append(layers, m.NotificationState.GetLayers(notifications.Render)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderEditor draws the title, grid, input line, status bar and key help
func (m Model) renderEditor() string {
	p := m.Session.Project()
	counts := summary.Compute(p)

	title := "tramo"
	if path := m.Session.Path(); path != "" {
		title += "  " + filepath.Base(path)
	}

	grid := components.RenderGrid(components.GridProps{
		Project:      p,
		Summary:      counts,
		Selected:     m.UiState.SelectedRow(),
		RowOffset:    m.UiState.ViewportOffset(),
		Rows:         m.gridRows(),
		PeriodOffset: m.UiState.PeriodOffset(),
		Width:        m.UiState.Width(),
	})

	inputLine := ""
	if m.UiState.Mode() == state.InputMode {
		inputLine = inputStyle().Render(m.InputState.Prompt) + " " + m.InputState.Input.View()
	}

	first := m.UiState.PeriodOffset() + 1
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:       m.UiState.Width(),
		Mode:        m.UiState.Mode().String(),
		File:        m.Session.Path(),
		Dirty:       m.Session.Dirty(),
		Duration:    p.Duration,
		Tasks:       len(p.Tasks),
		Peak:        summary.Peak(counts),
		FirstPeriod: first,
		LastPeriod:  min(first+m.visiblePeriods()-1, p.Duration),
	})

	// Pad the grid so the status bar stays at the bottom
	gridHeight := m.gridRows() + 2
	if lines := lipgloss.Height(grid); lines < gridHeight {
		grid += strings.Repeat("\n", gridHeight-lines)
	}

	return strings.Join([]string{
		titleStyle().Render(title),
		grid,
		inputLine,
		statusBar,
		m.help.View(m.keys),
	}, "\n")
}

func (m Model) renderFormLayer() *lipgloss.Layer {
	if m.FormState.Form == nil {
		return nil
	}

	var heading string
	switch m.FormState.Kind {
	case state.NewProjectForm:
		heading = "New Project"
	case state.DurationForm:
		heading = "Change Number of Periods"
	case state.ExportForm:
		heading = "Export"
	case state.QuitForm:
		heading = "Unsaved Changes"
	}

	box := formBoxStyle().
		Width(max(m.UiState.Width()/2, 40)).
		Render(titleStyle().Render(heading) + "\n\n" + m.FormState.Form.View())
	return m.centered(box)
}

func (m Model) renderHelpLayer() *lipgloss.Layer {
	content := titleStyle().Render("tramo - keyboard shortcuts") + "\n\n" +
		m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		subtleStyle().Render("Invalid edits are rejected and the row keeps its span. Press esc to close.")
	return m.centered(helpBoxStyle().Render(content))
}

// centered positions content in the middle of the window
func (m Model) centered(content string) *lipgloss.Layer {
	x := max((m.UiState.Width()-lipgloss.Width(content))/2, 0)
	y := max((m.UiState.Height()-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
