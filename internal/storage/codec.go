// Package storage reads and writes the project file used by Open and Save.
//
// The format is deliberately minimal: a duration line, a header, and one
// record per task. It reconstructs a project exactly, including blank rows
// and half-entered spans, and is distinct from the spreadsheet-oriented
// export CSV produced by package export.
//
//	duration,10
//	name,start,end,is_work_package
//	Design,1,3,0
//	Build,4,8,1
package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/validation"
)

const (
	durationKey       = "duration"
	legacyDurationKey = "#duration"
)

var (
	taskHeader       = []string{"name", "start", "end", "is_work_package"}
	legacyTaskHeader = []string{"name", "start", "end", "work_package"}
)

// Encode writes p in the project file format
func Encode(w io.Writer, p *models.Project) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{durationKey, strconv.Itoa(p.Duration)}); err != nil {
		return fmt.Errorf("failed to write duration: %w", err)
	}
	if err := cw.Write(taskHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, t := range p.Tasks {
		record := []string{t.Name, formatPeriod(t.Start), formatPeriod(t.End), formatFlag(t.WorkPackage)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write task %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Marshal returns the project file contents for p
func Marshal(p *models.Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a project file. Either the whole project is returned or an
// error wrapping ErrMalformedRecord, ErrInvalidInteger or
// ErrInvariantViolation inside a *ParseError; never a partial project.
func Decode(r io.Reader) (*models.Project, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	duration, err := readDuration(cr)
	if err != nil {
		return nil, err
	}
	if err := readHeader(cr); err != nil {
		return nil, err
	}

	p := &models.Project{Duration: duration, Tasks: []models.Task{}}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)

		task, err := parseTask(record, duration)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		p.Tasks = append(p.Tasks, task)
	}
	return p, nil
}

// Unmarshal parses project file contents
func Unmarshal(data []byte) (*models.Project, error) {
	return Decode(bytes.NewReader(data))
}

func readDuration(cr *csv.Reader) (int, error) {
	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return 0, &ParseError{Line: 1, Err: fmt.Errorf("%w: missing duration line", ErrMalformedRecord)}
	}
	if err != nil {
		return 0, csvError(err)
	}
	line, _ := cr.FieldPos(0)

	key := strings.TrimSpace(record[0])
	if len(record) != 2 || (key != durationKey && key != legacyDurationKey) {
		return 0, &ParseError{Line: line, Err: fmt.Errorf("%w: expected %q line, got %q", ErrMalformedRecord, durationKey+",<N>", strings.Join(record, ","))}
	}
	duration, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return 0, &ParseError{Line: line, Err: fmt.Errorf("%w: duration %q", ErrInvalidInteger, record[1])}
	}
	if err := validation.ValidateDuration(duration); err != nil {
		return 0, &ParseError{Line: line, Err: fmt.Errorf("%w: %w", ErrInvariantViolation, err)}
	}
	return duration, nil
}

func readHeader(cr *csv.Reader) error {
	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &ParseError{Line: 2, Err: fmt.Errorf("%w: missing task header", ErrMalformedRecord)}
	}
	if err != nil {
		return csvError(err)
	}
	if !equalFold(record, taskHeader) && !equalFold(record, legacyTaskHeader) {
		line, _ := cr.FieldPos(0)
		return &ParseError{Line: line, Err: fmt.Errorf("%w: unexpected task header %q", ErrMalformedRecord, strings.Join(record, ","))}
	}
	return nil
}

func parseTask(record []string, duration int) (models.Task, error) {
	if len(record) != len(taskHeader) {
		return models.Task{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, len(taskHeader), len(record))
	}

	start, err := parsePeriod(record[1])
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: start %q", ErrInvalidInteger, record[1])
	}
	end, err := parsePeriod(record[2])
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: end %q", ErrInvalidInteger, record[2])
	}
	wp, err := parseFlag(record[3])
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: work package flag %q", ErrMalformedRecord, record[3])
	}
	if err := validation.ValidatePartial(start, end, duration); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	return models.Task{Name: record[0], Start: start, End: end, WorkPackage: wp}, nil
}

// parsePeriod reads an edge; an empty field (or a literal 0) is Unset
func parsePeriod(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return validation.Unset, nil
	}
	return strconv.Atoi(s)
}

func parseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func formatPeriod(p int) string {
	if p == validation.Unset {
		return ""
	}
	return strconv.Itoa(p)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// csvError converts a reader failure. FieldPos is not usable after an
// error, so the line comes from the csv.ParseError when there is one.
func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Line: perr.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, perr.Err)}
	}
	return fmt.Errorf("failed to read project: %w", err)
}

func equalFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), b[i]) {
			return false
		}
	}
	return true
}
