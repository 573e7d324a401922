package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tramo/internal/tui/huhforms"
	"github.com/thenoetrevino/tramo/internal/tui/state"
)

// ============================================================================
// OPENING FORMS
// ============================================================================

func (m Model) handleNewProject() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Clear()
	fs.Duration = strconv.Itoa(m.Config.Project.DefaultDuration)
	fs.Confirm = true
	return m.openForm(state.NewProjectForm, huhforms.CreateNewProjectForm(
		&fs.Duration, m.Config.Project.MaxDuration, m.Session.Dirty(), &fs.Confirm))
}

func (m Model) handleChangeDuration() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Clear()
	fs.Duration = strconv.Itoa(m.Session.Table().Duration())
	return m.openForm(state.DurationForm, huhforms.CreateDurationForm(&fs.Duration, m.Config.Project.MaxDuration))
}

func (m Model) handleExport() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Clear()
	fs.ExportFormat = huhforms.FormatPDF
	fs.ExportPath = exportStem(m.Session.Path())
	fs.IncludeStartEnd = m.Config.Export.IncludeStartEndColumns()
	return m.openForm(state.ExportForm, huhforms.CreateExportForm(&fs.ExportFormat, &fs.ExportPath, &fs.IncludeStartEnd))
}

func (m Model) openQuitForm() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Clear()
	return m.openForm(state.QuitForm, huhforms.CreateQuitForm(&fs.Confirm))
}

func (m Model) openForm(kind state.FormKind, form *huh.Form) (tea.Model, tea.Cmd) {
	m.FormState.Kind = kind
	m.FormState.Form = form.WithTheme(huhforms.CreateTramoTheme(m.Config.Theme))
	m.UiState.SetMode(state.FormMode)
	return m, m.FormState.Form.Init()
}

// ============================================================================
// FORM UPDATES
// ============================================================================

// updateForm forwards msg to the open form and acts on it once the form
// completes or is aborted
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState
	if fs.Form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := fs.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		fs.Form = form
	}

	switch fs.Form.State {
	case huh.StateCompleted:
		return m.completeForm()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// completeForm applies the values of a completed form
func (m Model) completeForm() (tea.Model, tea.Cmd) {
	fs := m.FormState
	kind := fs.Kind
	defer m.closeForm()

	switch kind {
	case state.QuitForm:
		if fs.Confirm {
			return m, tea.Quit
		}

	case state.NewProjectForm:
		if !fs.Confirm {
			return m, nil
		}
		duration, _ := strconv.Atoi(strings.TrimSpace(fs.Duration))
		if err := m.Session.New(duration); err != nil {
			m.NotificationState.Add(state.LevelError, err.Error())
			return m, nil
		}
		m.UiState.SetSelectedRow(0)
		m.UiState.ScrollPeriods(-m.UiState.PeriodOffset(), duration, m.visiblePeriods())
		m.syncViewport()
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("New project with %d periods", duration))

	case state.DurationForm:
		duration, _ := strconv.Atoi(strings.TrimSpace(fs.Duration))
		if duration == m.Session.Table().Duration() {
			return m, nil
		}
		if err := m.Session.ChangeDuration(duration); err != nil {
			m.NotificationState.Add(state.LevelError, err.Error())
			return m, nil
		}
		m.syncViewport()
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Project now has %d periods", duration))

	case state.ExportForm:
		m.export(fs.ExportFormat, withExtension(fs.ExportPath, fs.ExportFormat), fs.IncludeStartEnd)
	}

	return m, nil
}

func (m *Model) export(format, path string, includeStartEnd bool) {
	var err error
	if format == huhforms.FormatCSV {
		err = m.Session.ExportCSV(path)
	} else {
		err = m.Session.ExportPDF(path, includeStartEnd)
	}
	if err != nil {
		slog.Error("export failed", "format", format, "path", path, "error", err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Export failed: %v", err))
		return
	}
	m.NotificationState.Add(state.LevelInfo, "Exported "+filepath.Base(path))
}

func (m *Model) closeForm() {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// exportStem suggests an export path next to the project file
func exportStem(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "-chart"
}

// withExtension adds .csv or .pdf unless path already has an extension
func withExtension(path, format string) string {
	path = strings.TrimSpace(path)
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + format
}
