// Package table implements the editable, ordered task table of a project.
//
// Every exported operation either commits completely or leaves the table
// exactly as it was and returns an error. Span edits are validated before
// anything is written, so the project invariants are never observable as
// violated. The table is owned by a single editing session and is not safe
// for concurrent use.
package table

import (
	"fmt"

	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/validation"
)

// Table is the ordered collection of tasks for one project
type Table struct {
	duration int
	tasks    []models.Task
}

// New creates an empty table for a project of the given duration
func New(duration int) (*Table, error) {
	p, err := models.NewProject(duration)
	if err != nil {
		return nil, err
	}
	return &Table{duration: p.Duration, tasks: p.Tasks}, nil
}

// FromProject builds a table holding a private copy of p's tasks.
// The project is validated first so a table can never start out broken.
func FromProject(p *models.Project) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := p.Clone()
	return &Table{duration: c.Duration, tasks: c.Tasks}, nil
}

// Project returns a snapshot of the table as a project read model
func (t *Table) Project() *models.Project {
	tasks := make([]models.Task, len(t.tasks))
	copy(tasks, t.tasks)
	return &models.Project{Duration: t.duration, Tasks: tasks}
}

// Duration returns the number of periods
func (t *Table) Duration() int { return t.duration }

// Len returns the number of rows
func (t *Table) Len() int { return len(t.tasks) }

// Task returns a copy of the row at index
func (t *Table) Task(index int) (models.Task, error) {
	if err := t.checkIndex(index); err != nil {
		return models.Task{}, err
	}
	return t.tasks[index], nil
}

// InsertBlankAfter inserts an empty row directly below index and returns
// the new row's index. Index -1 inserts at the top; on an empty table the
// row always lands at position 0.
func (t *Table) InsertBlankAfter(index int) (int, error) {
	pos := 0
	if len(t.tasks) > 0 {
		if index < -1 || index >= len(t.tasks) {
			return 0, fmt.Errorf("%w: %d (table has %d rows)", ErrRowOutOfRange, index, len(t.tasks))
		}
		pos = index + 1
	}
	t.tasks = append(t.tasks, models.Task{})
	copy(t.tasks[pos+1:], t.tasks[pos:])
	t.tasks[pos] = models.Task{}
	return pos, nil
}

// SetName renames a row; any text, including empty, is accepted. Line
// breaks are stored as "\n".
func (t *Table) SetName(index int, name string) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.tasks[index].Name = models.NormalizeName(name)
	return nil
}

// SetSpan sets both edges at once. On error the previous span is kept.
func (t *Table) SetSpan(index, start, end int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	if err := validation.ValidateSpan(start, end, t.duration); err != nil {
		return err
	}
	t.tasks[index].Start, t.tasks[index].End = start, end
	return nil
}

// SetStart sets only the start edge, checking it against the end edge when
// that one is already set.
func (t *Table) SetStart(index, start int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	if err := validation.ValidatePeriod(start, t.duration); err != nil {
		return err
	}
	if err := validation.ValidatePartial(start, t.tasks[index].End, t.duration); err != nil {
		return err
	}
	t.tasks[index].Start = start
	return nil
}

// SetEnd sets only the end edge, checking it against the start edge when
// that one is already set.
func (t *Table) SetEnd(index, end int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	if err := validation.ValidatePeriod(end, t.duration); err != nil {
		return err
	}
	if err := validation.ValidatePartial(t.tasks[index].Start, end, t.duration); err != nil {
		return err
	}
	t.tasks[index].End = end
	return nil
}

// ClearSpan unsets both edges, turning the row back into an unscheduled task
func (t *Table) ClearSpan(index int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.tasks[index].Start, t.tasks[index].End = validation.Unset, validation.Unset
	return nil
}

// ResizeEdge moves one edge of a scheduled row by delta periods.
// Only the named edge changes. A candidate span that fails validation is
// rejected rather than clamped, and the row keeps its previous span.
func (t *Table) ResizeEdge(index int, edge models.Edge, delta int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	task := t.tasks[index]
	if !task.HasSpan() {
		return fmt.Errorf("row %d: %w", index, models.ErrNoSpan)
	}

	start, end := task.Start, task.End
	switch edge {
	case models.EdgeStart:
		start += delta
	case models.EdgeEnd:
		end += delta
	default:
		return fmt.Errorf("%w: %v", models.ErrUnknownEdge, edge)
	}
	return t.SetSpan(index, start, end)
}

// ToggleWorkPackage flips the work-package flag of a row
func (t *Table) ToggleWorkPackage(index int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.tasks[index].WorkPackage = !t.tasks[index].WorkPackage
	return nil
}

// Remove deletes a row; rows below it move up by one
func (t *Table) Remove(index int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.tasks = append(t.tasks[:index], t.tasks[index+1:]...)
	return nil
}

// MoveUp swaps a row with the one above it
func (t *Table) MoveUp(index int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	if index == 0 {
		return ErrAlreadyFirstRow
	}
	t.tasks[index-1], t.tasks[index] = t.tasks[index], t.tasks[index-1]
	return nil
}

// MoveDown swaps a row with the one below it
func (t *Table) MoveDown(index int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	if index == len(t.tasks)-1 {
		return ErrAlreadyLastRow
	}
	t.tasks[index+1], t.tasks[index] = t.tasks[index], t.tasks[index+1]
	return nil
}

func (t *Table) checkIndex(index int) error {
	if index < 0 || index >= len(t.tasks) {
		return fmt.Errorf("%w: %d (table has %d rows)", ErrRowOutOfRange, index, len(t.tasks))
	}
	return nil
}
