package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/thenoetrevino/tramo/internal/models"
)

// PDFOptions controls RenderPDF
type PDFOptions struct {
	// IncludeStartEnd adds the Start and End columns after the task name
	IncludeStartEnd bool

	// Palette overrides the colours; empty fields use DefaultPalette
	Palette Palette

	// Title is stored in the document metadata
	Title string

	// Uncompressed disables stream compression (useful for inspection)
	Uncompressed bool

	// CreatedAt fixes the metadata timestamp; zero means now
	CreatedAt time.Time
}

const emptyPlaceholder = "No tasks defined"

// RenderPDF writes the task grid of p as a landscape PDF. The summary row
// is not part of the export.
func RenderPDF(w io.Writer, p *models.Project, opts PDFOptions) error {
	pdf, tr, measure := newDocument(opts)

	r := &pdfRenderer{
		pdf:     pdf,
		tr:      tr,
		measure: measure,
		layout:  ComputeLayout(p, opts.IncludeStartEnd, measure),
		palette: opts.Palette.withDefaults(),
	}
	r.render(p)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// newDocument sets up an A4 landscape document at the base font and returns
// it with its text translator and a width measure for ComputeLayout
func newDocument(opts PDFOptions) (*fpdf.Fpdf, func(string) string, func(string) float64) {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetCreator("tramo", false)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if !opts.CreatedAt.IsZero() {
		pdf.SetCreationDate(opts.CreatedAt)
	}
	pdf.SetFont("Helvetica", "", baseFontSize)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	measure := func(s string) float64 { return pdf.GetStringWidth(tr(s)) }
	return pdf, tr, measure
}

// PDF returns the rendered document for p
func PDF(p *models.Project, opts PDFOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, p, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfRenderer struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	measure func(string) float64
	layout  Layout
	palette Palette
}

func (r *pdfRenderer) render(p *models.Project) {
	l := r.layout
	// Landscape swaps the size, so the long side goes in Ht.
	size := fpdf.SizeType{Wd: l.PageHeight, Ht: l.PageWidth}

	for page := 0; page < l.Pages; page++ {
		r.pdf.AddPageFormat("L", size)
		r.drawHeader()

		y := l.Margin + l.HeaderHeight
		if len(p.Tasks) == 0 {
			r.drawPlaceholder(y)
			continue
		}
		from, to := l.PageRows(page, len(p.Tasks))
		for _, t := range p.Tasks[from:to] {
			r.drawRow(t, y)
			y += l.RowHeight
		}
	}
}

func (r *pdfRenderer) drawHeader() {
	l := r.layout
	r.setDraw(r.palette.Grid)
	r.pdf.SetLineWidth(0.5)

	for _, c := range l.TextColumns() {
		r.headerCell(c, r.palette.TextHeader, baseFontSize)
	}
	for _, c := range l.PeriodColumns() {
		r.headerCell(c, r.palette.PeriodHeader, l.PeriodFontSize)
	}
	r.pdf.SetFont("Helvetica", "", baseFontSize)
}

func (r *pdfRenderer) headerCell(c Column, fill string, fontSize float64) {
	l := r.layout
	r.setFill(fill)
	r.pdf.Rect(c.X, l.Margin, c.Width, l.HeaderHeight, "FD")
	r.pdf.SetFont("Helvetica", "B", fontSize)
	r.pdf.SetXY(c.X, l.Margin)
	r.pdf.CellFormat(c.Width, l.HeaderHeight, c.Title, "", 0, "CM", false, 0, "")
}

// drawRow draws the text cells and then the period cells of t. Bars depend
// only on the period columns, so the optional Start/End columns never change
// which cells are filled.
func (r *pdfRenderer) drawRow(t models.Task, y float64) {
	l := r.layout

	for _, c := range l.TextColumns() {
		r.rowCell(t, c, y)
		switch c.Kind {
		case TaskColumn:
			r.text(c.X+cellTextInset, y, c.Width-2*cellTextInset, r.fit(t.Name, c.Width-2*cellTextInset), "LM")
		case StartColumn:
			r.text(c.X, y, c.Width, periodText(t.Start), "CM")
		case EndColumn:
			r.text(c.X, y, c.Width, periodText(t.End), "CM")
		}
	}

	bar := r.palette.TaskBar
	if t.Highlighted() {
		bar = r.palette.WorkPackageBar
	}
	for _, c := range l.PeriodColumns() {
		r.rowCell(t, c, y)
		if t.Active(c.Period) {
			r.setFill(bar)
			r.pdf.Rect(c.X+1, y+1, c.Width-2, l.RowHeight-2, "F")
		}
	}
}

// rowCell outlines one cell, shaded for work-package rows
func (r *pdfRenderer) rowCell(t models.Task, c Column, y float64) {
	style := "D"
	if t.Highlighted() {
		r.setFill(r.palette.WorkPackageRow)
		style = "FD"
	}
	r.pdf.Rect(c.X, y, c.Width, r.layout.RowHeight, style)
}

func (r *pdfRenderer) drawPlaceholder(y float64) {
	l := r.layout
	width := l.GridRight() - l.Margin
	r.pdf.Rect(l.Margin, y, width, l.RowHeight, "D")
	r.text(l.Margin, y, width, emptyPlaceholder, "CM")
}

func (r *pdfRenderer) text(x, y, w float64, s, align string) {
	r.pdf.SetXY(x, y)
	r.pdf.CellFormat(w, r.layout.RowHeight, r.tr(s), "", 0, align, false, 0, "")
}

// fit shortens s with a trailing "..." until it fits in width
func (r *pdfRenderer) fit(s string, width float64) string {
	if r.measure(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if r.measure(candidate) <= width {
			return candidate
		}
	}
	return ""
}

func (r *pdfRenderer) setFill(hex string) {
	red, green, blue, _ := parseHex(hex)
	r.pdf.SetFillColor(red, green, blue)
}

func (r *pdfRenderer) setDraw(hex string) {
	red, green, blue, _ := parseHex(hex)
	r.pdf.SetDrawColor(red, green, blue)
}
