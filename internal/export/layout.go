package export

import (
	"math"
	"strconv"

	"github.com/thenoetrevino/tramo/internal/models"
)

// Page geometry, in points. The page is A4 landscape unless the period
// columns need more room, in which case it grows wider.
const (
	pageMargin    = 28.0
	a4LongSide    = 841.89
	a4ShortSide   = 595.28
	baseFontSize  = 9.0
	headerHeight  = 20.0
	rowMinHeight  = 12.0
	rowMaxHeight  = 24.0
	cellTextInset = 4.0

	taskColumnMinWidth = 120.0
	taskColumnPadding  = 24.0
	taskColumnMaxRatio = 0.45
	startEndWidth      = 44.0
	periodMinWidth     = 12.0
)

// ColumnKind identifies what a grid column shows
type ColumnKind int

const (
	TaskColumn ColumnKind = iota
	StartColumn
	EndColumn
	PeriodColumn
)

// Column is one vertical strip of the grid
type Column struct {
	Kind   ColumnKind
	Title  string
	Period int // set for PeriodColumn only
	X      float64
	Width  float64
}

// Right returns the x coordinate of the column's right edge
func (c Column) Right() float64 { return c.X + c.Width }

// Layout is the computed geometry of the PDF grid
type Layout struct {
	PageWidth      float64
	PageHeight     float64
	Margin         float64
	Columns        []Column
	HeaderHeight   float64
	RowHeight      float64
	RowsPerPage    int
	Pages          int
	PeriodFontSize float64
}

// TextColumns returns the Task (and optional Start/End) columns
func (l Layout) TextColumns() []Column {
	var out []Column
	for _, c := range l.Columns {
		if c.Kind != PeriodColumn {
			out = append(out, c)
		}
	}
	return out
}

// PeriodColumns returns one column per period, in order
func (l Layout) PeriodColumns() []Column {
	var out []Column
	for _, c := range l.Columns {
		if c.Kind == PeriodColumn {
			out = append(out, c)
		}
	}
	return out
}

// GridRight returns the right edge of the rightmost column
func (l Layout) GridRight() float64 {
	if len(l.Columns) == 0 {
		return l.Margin
	}
	return l.Columns[len(l.Columns)-1].Right()
}

// PageRows returns the task indexes drawn on page (0-based)
func (l Layout) PageRows(page, total int) (from, to int) {
	from = page * l.RowsPerPage
	to = min(from+l.RowsPerPage, total)
	return from, max(from, to)
}

// ComputeLayout sizes the grid for p. measure returns the width of a string
// at the base font size.
//
// The page width is derived from the columns so the last period column ends
// exactly at the right margin: on a standard page the period columns stretch
// to fill the space, and when they would fall below their minimum width the
// page widens instead.
func ComputeLayout(p *models.Project, includeStartEnd bool, measure func(string) float64) Layout {
	duration := max(1, p.Duration)
	l := Layout{
		Margin:       pageMargin,
		PageHeight:   a4ShortSide,
		HeaderHeight: headerHeight,
	}

	contentWidth := a4LongSide - 2*pageMargin
	nameWidth := taskColumnWidth(p, measure, contentWidth)

	x := pageMargin
	l.Columns = append(l.Columns, Column{Kind: TaskColumn, Title: "Task", X: x, Width: nameWidth})
	x += nameWidth
	if includeStartEnd {
		l.Columns = append(l.Columns,
			Column{Kind: StartColumn, Title: "Start", X: x, Width: startEndWidth},
			Column{Kind: EndColumn, Title: "End", X: x + startEndWidth, Width: startEndWidth},
		)
		x += 2 * startEndWidth
	}

	colWidth := (a4LongSide - pageMargin - x) / float64(duration)
	if colWidth < periodMinWidth {
		colWidth = periodMinWidth
	}
	for period := 1; period <= duration; period++ {
		l.Columns = append(l.Columns, Column{
			Kind:   PeriodColumn,
			Title:  strconv.Itoa(period),
			Period: period,
			X:      x,
			Width:  colWidth,
		})
		x += colWidth
	}
	l.PageWidth = x + pageMargin

	l.PeriodFontSize = periodFontSize(duration, colWidth, measure)

	rows := max(1, len(p.Tasks))
	available := a4ShortSide - 2*pageMargin - headerHeight
	l.RowHeight = math.Max(rowMinHeight, math.Min(rowMaxHeight, available/float64(rows)))
	l.RowsPerPage = max(1, int(available/l.RowHeight))
	l.Pages = (rows + l.RowsPerPage - 1) / l.RowsPerPage

	return l
}

// taskColumnWidth fits the longest name, bounded below by a minimum and
// above by a share of the page.
func taskColumnWidth(p *models.Project, measure func(string) float64, contentWidth float64) float64 {
	longest := 0.0
	for _, t := range p.Tasks {
		longest = math.Max(longest, measure(t.Name))
	}
	capWidth := math.Max(taskColumnMinWidth, contentWidth*taskColumnMaxRatio)
	return math.Max(taskColumnMinWidth, math.Min(longest+taskColumnPadding, capWidth))
}

// periodFontSize shrinks the header numbers until the widest one fits
func periodFontSize(duration int, colWidth float64, measure func(string) float64) float64 {
	widest := measure(strconv.Itoa(duration))
	room := colWidth - 2
	if widest <= room || widest == 0 {
		return baseFontSize
	}
	return baseFontSize * room / widest
}
