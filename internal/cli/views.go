package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tramo/internal/cli/styles"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/summary"
)

// TaskView is the output form of one row
type TaskView struct {
	Row         int    `json:"row"`
	Name        string `json:"name"`
	Start       *int   `json:"start"`
	End         *int   `json:"end"`
	WorkPackage bool   `json:"work_package"`
}

// NewTaskView builds the view of the task at index
func NewTaskView(index int, t models.Task) TaskView {
	v := TaskView{Row: index + 1, Name: t.Name, WorkPackage: t.WorkPackage}
	if t.HasStart() {
		start := t.Start
		v.Start = &start
	}
	if t.HasEnd() {
		end := t.End
		v.End = &end
	}
	return v
}

func (v TaskView) span() string {
	return optional(v.Start) + ".." + optional(v.End)
}

func optional(p *int) string {
	if p == nil {
		return "?"
	}
	return strconv.Itoa(*p)
}

// ProjectView is the output form of a whole project
type ProjectView struct {
	File     string     `json:"file,omitempty"`
	Duration int        `json:"duration"`
	Tasks    []TaskView `json:"tasks"`
	Summary  []int      `json:"summary"`
	Peak     int        `json:"peak"`

	project *models.Project
}

// NewProjectView builds the view of p, read from file
func NewProjectView(file string, p *models.Project) ProjectView {
	counts := summary.Compute(p)
	v := ProjectView{
		File:     file,
		Duration: p.Duration,
		Tasks:    make([]TaskView, len(p.Tasks)),
		Summary:  counts,
		Peak:     summary.Peak(counts),
		project:  p,
	}
	for i, t := range p.Tasks {
		v.Tasks[i] = NewTaskView(i, t)
	}
	return v
}

// QuietValue returns the number of tasks
func (v ProjectView) QuietValue() string { return strconv.Itoa(len(v.Tasks)) }

// PrintHuman draws the project as a text chart with the summary row below
func (v ProjectView) PrintHuman(w io.Writer) error {
	var b strings.Builder

	title := fmt.Sprintf("%d periods, %d tasks", v.Duration, len(v.Tasks))
	if v.File != "" {
		title = v.File + ": " + title
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	nameWidth := len("Task")
	for _, t := range v.Tasks {
		nameWidth = max(nameWidth, len([]rune(t.Name)))
	}
	cell := len(strconv.Itoa(v.Duration)) + 1

	header := fmt.Sprintf("%3s  %-*s %5s %5s  ", "#", nameWidth, "Task", "Start", "End")
	for period := 1; period <= v.Duration; period++ {
		header += fmt.Sprintf("%*d", cell, period)
	}
	b.WriteString(styles.HeaderStyle.Render(header))
	b.WriteString("\n")

	for i, t := range v.Tasks {
		fmt.Fprintf(&b, "%3d  %-*s %5s %5s  ", t.Row, nameWidth, t.Name, blankIfNil(t.Start), blankIfNil(t.End))
		task := v.project.Tasks[i]
		for period := 1; period <= v.Duration; period++ {
			marker := task.Marker(period)
			switch {
			case marker == "":
				fmt.Fprintf(&b, "%*s", cell, ".")
			case task.Highlighted():
				b.WriteString(styles.WorkPackageBarStyle.Render(fmt.Sprintf("%*s", cell, marker)))
			default:
				b.WriteString(styles.TaskBarStyle.Render(fmt.Sprintf("%*s", cell, marker)))
			}
		}
		b.WriteString("\n")
	}
	if len(v.Tasks) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("  (no tasks)"))
		b.WriteString("\n")
	}

	summaryLine := fmt.Sprintf("%3s  %-*s %5s %5s  ", "", nameWidth, "Total", "", "")
	for _, n := range v.Summary {
		summaryLine += fmt.Sprintf("%*d", cell, n)
	}
	b.WriteString(styles.SummaryStyle.Render(summaryLine))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown renders the project as a markdown table
func (v ProjectView) Markdown() string {
	var b strings.Builder
	title := "Project"
	if v.File != "" {
		title = v.File
	}
	fmt.Fprintf(&b, "# %s\n\n%d periods, %d tasks, peak load %d\n\n", title, v.Duration, len(v.Tasks), v.Peak)

	if len(v.Tasks) == 0 {
		b.WriteString("_No tasks defined_\n")
		return b.String()
	}

	b.WriteString("| # | Task | Start | End | Work package |\n|---|---|---|---|---|\n")
	for _, t := range v.Tasks {
		wp := ""
		if t.WorkPackage {
			wp = "yes"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			t.Row, escapeMarkdown(t.Name), blankIfNil(t.Start), blankIfNil(t.End), wp)
	}
	return b.String()
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func blankIfNil(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// RowResult reports the state of one row after an edit
type RowResult struct {
	File   string   `json:"file"`
	Action string   `json:"action"`
	Task   TaskView `json:"task"`
}

// QuietValue returns the row number
func (r RowResult) QuietValue() string { return strconv.Itoa(r.Task.Row) }

// PrintHuman prints a one-line confirmation
func (r RowResult) PrintHuman(w io.Writer) error {
	wp := ""
	if r.Task.WorkPackage {
		wp = " [work package]"
	}
	_, err := fmt.Fprintf(w, "%s row %d: %q %s%s\n", r.Action, r.Task.Row, r.Task.Name, r.Task.span(), wp)
	return err
}

// Message is a plain result with a short machine-readable value
type Message struct {
	Text  string `json:"message"`
	Value string `json:"value,omitempty"`
}

// QuietValue returns the value
func (m Message) QuietValue() string { return m.Value }

// PrintHuman prints the text
func (m Message) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintln(w, m.Text)
	return err
}
