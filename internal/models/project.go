package models

import (
	"fmt"

	"github.com/thenoetrevino/tramo/internal/validation"
)

// Project is a plan of ordered tasks over a fixed number of periods.
// Duration never changes for a given Project value; WithDuration builds a
// new one instead.
type Project struct {
	Duration int
	Tasks    []Task
}

// NewProject creates an empty project with the given duration
func NewProject(duration int) (*Project, error) {
	if err := validation.ValidateDuration(duration); err != nil {
		return nil, err
	}
	return &Project{Duration: duration, Tasks: []Task{}}, nil
}

// Validate checks the duration and every task span
func (p *Project) Validate() error {
	if err := validation.ValidateDuration(p.Duration); err != nil {
		return err
	}
	for i, t := range p.Tasks {
		if err := validation.ValidatePartial(t.Start, t.End, p.Duration); err != nil {
			return fmt.Errorf("task %d (%q): %w", i+1, t.Name, err)
		}
	}
	return nil
}

// Clone returns a deep copy that shares no task storage with p
func (p *Project) Clone() *Project {
	tasks := make([]Task, len(p.Tasks))
	copy(tasks, p.Tasks)
	return &Project{Duration: p.Duration, Tasks: tasks}
}

// Equal reports whether both projects have the same duration and rows
func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Duration != other.Duration || len(p.Tasks) != len(other.Tasks) {
		return false
	}
	for i := range p.Tasks {
		if p.Tasks[i] != other.Tasks[i] {
			return false
		}
	}
	return true
}

// WithDuration returns a new project with the given duration.
// Set edges are clamped into 1..duration; if clamping inverts a span the
// edges are swapped. The receiver is left untouched.
func (p *Project) WithDuration(duration int) (*Project, error) {
	if err := validation.ValidateDuration(duration); err != nil {
		return nil, err
	}
	next := p.Clone()
	next.Duration = duration
	for i := range next.Tasks {
		t := &next.Tasks[i]
		if t.HasStart() {
			t.Start = clamp(t.Start, 1, duration)
		}
		if t.HasEnd() {
			t.End = clamp(t.End, 1, duration)
		}
		if t.HasSpan() && t.Start > t.End {
			t.Start, t.End = t.End, t.Start
		}
	}
	return next, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
