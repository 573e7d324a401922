package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/summary"
)

func scenario() *models.Project {
	return &models.Project{Duration: 10, Tasks: []models.Task{
		{Name: "Design", Start: 1, End: 3},
		{Name: "Build", Start: 4, End: 8, WorkPackage: true},
		{Name: "Review", Start: 9},
	}}
}

func render(props GridProps) []string {
	return strings.Split(ansi.Strip(RenderGrid(props)), "\n")
}

func TestComputeGridLayout(t *testing.T) {
	p := scenario()

	layout := ComputeGridLayout(p, 0)
	assert.Equal(t, len(BlankRowHint), layout.NameWidth)
	assert.Equal(t, 3, layout.CellWidth)
	assert.Equal(t, 10, layout.Periods)

	narrow := ComputeGridLayout(p, 40)
	fixed := selectorWidth + narrow.NameWidth + 2*edgeWidth + 1
	assert.Equal(t, (40-fixed)/3, narrow.Periods)

	tiny := ComputeGridLayout(p, 5)
	assert.Equal(t, 1, tiny.Periods, "at least one period column")

	long := &models.Project{Duration: 100, Tasks: []models.Task{{Name: strings.Repeat("x", 60)}}}
	layout = ComputeGridLayout(long, 0)
	assert.Equal(t, maxNameWidth, layout.NameWidth)
	assert.Equal(t, 4, layout.CellWidth)
}

func TestRenderGrid(t *testing.T) {
	p := scenario()
	lines := render(GridProps{Project: p, Summary: summary.Compute(p), Selected: 1, Rows: 10})

	require.Len(t, lines, 1+3+1+1, "header, tasks, blank row, summary")

	assert.Contains(t, lines[0], "Task")
	assert.Contains(t, lines[0], "Start")
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[0], " "), "10"))

	assert.True(t, strings.HasPrefix(lines[1], "  Design"))
	assert.Equal(t, 3, strings.Count(lines[1], strings.Repeat(taskGlyph, 3)))

	assert.True(t, strings.HasPrefix(lines[2], "> Build"), "selected row has the cursor")
	assert.Equal(t, 5, strings.Count(lines[2], strings.Repeat(workPackageGlyph, 3)))

	assert.Contains(t, lines[3], "Review")
	assert.Contains(t, lines[3], "-", "unset end")
	assert.NotContains(t, lines[3], taskGlyph, "half-set span draws no bar")

	assert.Contains(t, lines[4], BlankRowHint)

	assert.True(t, strings.HasPrefix(lines[5], "  Total"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[5], " "), "0"))
}

func TestRenderGrid_Windows(t *testing.T) {
	p := scenario()

	lines := render(GridProps{Project: p, Summary: summary.Compute(p), RowOffset: 2, Rows: 1})
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Review")

	lines = render(GridProps{Project: p, Summary: summary.Compute(p), Rows: 10, Width: 40, PeriodOffset: 3})
	layout := ComputeGridLayout(p, 40)
	assert.Contains(t, lines[0], " 4", "first visible period follows the offset")
	assert.NotContains(t, lines[0], " 1 ")
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), selectorWidth+layout.NameWidth+2*edgeWidth+1+layout.Periods*layout.CellWidth)
	}
}

func TestRenderGrid_Empty(t *testing.T) {
	p := &models.Project{Duration: 3}
	lines := render(GridProps{Project: p, Summary: summary.Compute(p), Rows: 5})

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "> "+BlankRowHint))
}

func TestRenderGrid_BlankRows(t *testing.T) {
	p := &models.Project{Duration: 4, Tasks: []models.Task{
		{Name: "Design", Start: 1, End: 2},
		{Name: "  "},
		{WorkPackage: true},
	}}
	lines := render(GridProps{Project: p, Summary: summary.Compute(p), Selected: 1, Rows: 10})

	require.Len(t, lines, 1+3+1+1)
	assert.True(t, strings.HasPrefix(lines[2], "> "+BlankRowHint), "blank task row shows the hint")
	assert.NotContains(t, lines[3], BlankRowHint, "a work package flag keeps the row visible")
	assert.Contains(t, lines[4], BlankRowHint)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Design", truncate("Design", 8))
	assert.Equal(t, "Desi…", truncate("Design review", 5))
}

func TestRenderStatusBar(t *testing.T) {
	bar := ansi.Strip(RenderStatusBar(StatusBarProps{
		Width: 100, Mode: "NORMAL", File: "plan.csv", Dirty: true,
		Duration: 10, Tasks: 2, Peak: 1, FirstPeriod: 1, LastPeriod: 10,
	}))
	assert.Contains(t, bar, "NORMAL")
	assert.Contains(t, bar, "plan.csv [+]")
	assert.Contains(t, bar, "10 periods · 2 tasks · peak 1")

	bar = ansi.Strip(RenderStatusBar(StatusBarProps{
		Width: 100, Mode: "NORMAL", Duration: 40, FirstPeriod: 5, LastPeriod: 20,
	}))
	assert.Contains(t, bar, "[no file]")
	assert.Contains(t, bar, "periods 5-20 of 40")
}
