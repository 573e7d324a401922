// Package export produces the shareable representations of a project: a
// spreadsheet-friendly CSV with one column per period and a landscape PDF of
// the task grid. Neither format is meant to be read back; use package
// storage for that.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/thenoetrevino/tramo/internal/models"
)

var csvHeader = []string{"Task", "Start", "End"}

// WriteCSV writes the export CSV: Task, Start, End and one marker column
// per period ("X" active, "W" active work package, empty otherwise).
func WriteCSV(w io.Writer, p *models.Project) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(csvHeader)+p.Duration)
	header = append(header, csvHeader...)
	for period := 1; period <= p.Duration; period++ {
		header = append(header, strconv.Itoa(period))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for i, t := range p.Tasks {
		row := make([]string, 0, len(header))
		row = append(row, t.Name, periodText(t.Start), periodText(t.End))
		for period := 1; period <= p.Duration; period++ {
			row = append(row, t.Marker(period))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV returns the export CSV for p
func CSV(p *models.Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// periodText renders an edge, leaving unset edges empty
func periodText(period int) string {
	if period < 1 {
		return ""
	}
	return strconv.Itoa(period)
}
