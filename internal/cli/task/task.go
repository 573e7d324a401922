// Package task implements the `tramo task` commands, which edit single rows
// of a project file in place. Rows are numbered from 1.
package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/services/table"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Edit the rows of a project file",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(SpanCmd())
	cmd.AddCommand(StartCmd())
	cmd.AddCommand(EndCmd())
	cmd.AddCommand(ClearCmd())
	cmd.AddCommand(ResizeCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// rowResult reads back the row at index after an edit
func rowResult(path, action string, t *table.Table, index int) (any, error) {
	task, err := t.Task(index)
	if err != nil {
		return nil, err
	}
	return cli.RowResult{File: path, Action: action, Task: cli.NewTaskView(index, task)}, nil
}
