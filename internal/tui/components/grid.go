package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/tui/theme"
)

const (
	selectorWidth = 2
	edgeWidth     = 6
	minNameWidth  = 4
	maxNameWidth  = 28

	taskGlyph        = "█"
	workPackageGlyph = "▓"
	idleGlyph        = "·"

	// BlankRowHint is shown in the trailing blank row
	BlankRowHint = "(new task)"
)

// GridLayout holds the column widths of the chart
type GridLayout struct {
	NameWidth int
	CellWidth int
	// Periods is how many period columns fit the width
	Periods int
}

// ComputeGridLayout sizes the chart for p in width columns. A zero width
// fits every period.
func ComputeGridLayout(p *models.Project, width int) GridLayout {
	nameWidth := len(BlankRowHint)
	for _, t := range p.Tasks {
		nameWidth = max(nameWidth, lipgloss.Width(t.Name))
	}
	nameWidth = min(max(nameWidth, minNameWidth), maxNameWidth)

	cell := max(len(strconv.Itoa(p.Duration)), 2) + 1

	periods := p.Duration
	if width > 0 {
		fixed := selectorWidth + nameWidth + 2*edgeWidth + 1
		if avail := width - fixed; avail < periods*cell {
			periods = max(avail/cell, 1)
		}
	}
	return GridLayout{NameWidth: nameWidth, CellWidth: cell, Periods: min(periods, p.Duration)}
}

// GridProps holds everything RenderGrid draws
type GridProps struct {
	Project *models.Project
	Summary []int

	// Selected is the cursor row; len(Project.Tasks) selects the blank row
	Selected int

	// RowOffset and Rows select the visible window of task rows
	RowOffset int
	Rows      int

	// PeriodOffset is the number of periods scrolled off the left edge
	PeriodOffset int

	Width int
}

// RenderGrid draws the header, the task rows with a trailing blank row for
// new entries, and the summary row. Blank rows show the same hint as the
// trailing one.
func RenderGrid(props GridProps) string {
	p := props.Project
	layout := ComputeGridLayout(p, props.Width)
	first := min(props.PeriodOffset+1, p.Duration)
	last := min(props.PeriodOffset+layout.Periods, p.Duration)

	lines := []string{renderHeader(layout, first, last)}

	end := min(props.RowOffset+max(props.Rows, 1), len(p.Tasks)+1)
	for i := props.RowOffset; i < end; i++ {
		if i == len(p.Tasks) || (p.Tasks[i].IsBlank() && !p.Tasks[i].Highlighted()) {
			lines = append(lines, renderBlankRow(layout, i == props.Selected))
			continue
		}
		lines = append(lines, renderTaskRow(layout, p.Tasks[i], i == props.Selected, first, last))
	}

	lines = append(lines, renderSummaryRow(layout, props.Summary, first, last))
	return strings.Join(lines, "\n")
}

func renderHeader(layout GridLayout, first, last int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", selectorWidth))
	fmt.Fprintf(&b, "%-*s%*s%*s ", layout.NameWidth, "Task", edgeWidth, "Start", edgeWidth, "End")
	for period := first; period <= last; period++ {
		fmt.Fprintf(&b, "%*d", layout.CellWidth, period)
	}
	return style.Render(b.String())
}

func renderTaskRow(layout GridLayout, task models.Task, selected bool, first, last int) string {
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if task.Highlighted() {
		textStyle = textStyle.Bold(true).Foreground(lipgloss.Color(theme.WorkPackageBar))
	}
	if selected {
		textStyle = textStyle.Background(lipgloss.Color(theme.SelectedBg))
	}

	text := fmt.Sprintf("%s%-*s%*s%*s ",
		selector(selected),
		layout.NameWidth, truncate(task.Name, layout.NameWidth),
		edgeWidth, edgeText(task.HasStart(), task.Start),
		edgeWidth, edgeText(task.HasEnd(), task.End))

	var b strings.Builder
	b.WriteString(textStyle.Render(text))
	for period := first; period <= last; period++ {
		b.WriteString(renderCell(layout.CellWidth, task, period))
	}
	return b.String()
}

func renderCell(width int, task models.Task, period int) string {
	if !task.Active(period) {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Grid)).
			Render(fmt.Sprintf("%*s", width, idleGlyph))
	}
	glyph, color := taskGlyph, theme.TaskBar
	if task.Highlighted() {
		glyph, color = workPackageGlyph, theme.WorkPackageBar
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(strings.Repeat(glyph, width))
}

func renderBlankRow(layout GridLayout, selected bool) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true)
	if selected {
		style = style.Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(fmt.Sprintf("%s%-*s", selector(selected), layout.NameWidth, BlankRowHint))
}

func renderSummaryRow(layout GridLayout, counts []int, first, last int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Summary))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", selectorWidth))
	fmt.Fprintf(&b, "%-*s%*s%*s ", layout.NameWidth, "Total", edgeWidth, "", edgeWidth, "")
	for period := first; period <= last && period <= len(counts); period++ {
		fmt.Fprintf(&b, "%*d", layout.CellWidth, counts[period-1])
	}
	return style.Render(b.String())
}

func selector(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func edgeText(set bool, period int) string {
	if !set {
		return "-"
	}
	return strconv.Itoa(period)
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
