package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/models"
	"github.com/thenoetrevino/tramo/internal/services/table"
)

// RenameCmd returns the task rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <file> <row> <name>",
		Short: "Rename a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Renamed", func(t *table.Table, index int) error {
				return t.SetName(index, args[2])
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// SpanCmd returns the task span subcommand
func SpanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span <file> <row> <start> <end>",
		Short: "Set the first and last active period of a task",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Updated", func(t *table.Table, index int) error {
				start, err := cli.ParseInt("start", args[2])
				if err != nil {
					return err
				}
				end, err := cli.ParseInt("end", args[3])
				if err != nil {
					return err
				}
				return t.SetSpan(index, start, end)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// StartCmd returns the task start subcommand
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <file> <row> <period>",
		Short: "Set the first active period of a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Updated", func(t *table.Table, index int) error {
				start, err := cli.ParseInt("start", args[2])
				if err != nil {
					return err
				}
				return t.SetStart(index, start)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// EndCmd returns the task end subcommand
func EndCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "end <file> <row> <period>",
		Short: "Set the last active period of a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Updated", func(t *table.Table, index int) error {
				end, err := cli.ParseInt("end", args[2])
				if err != nil {
					return err
				}
				return t.SetEnd(index, end)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ClearCmd returns the task clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear <file> <row>",
		Short: "Unset both edges of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Cleared", func(t *table.Table, index int) error {
				return t.ClearSpan(index)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ResizeCmd returns the task resize subcommand
func ResizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize <file> <row> <start|end> <delta>",
		Short: "Move one edge of a task's span",
		Long: `Move the start or end edge of a task by a number of periods.
The edit is rejected if the span would leave the project or invert.

Examples:
  tramo task resize plan.csv 2 end 1
  tramo task resize plan.csv 2 start -- -1
`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Resized", func(t *table.Table, index int) error {
				edge, err := models.ParseEdge(args[2])
				if err != nil {
					return err
				}
				delta, err := cli.ParseInt("delta", args[3])
				if err != nil {
					return err
				}
				return t.ResizeEdge(index, edge, delta)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <file> <row>",
		Short: "Toggle the work package flag of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRow(cmd, args, "Toggled", func(t *table.Table, index int) error {
				return t.ToggleWorkPackage(index)
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// editRow parses <file> <row> and applies fn to that row
func editRow(cmd *cobra.Command, args []string, action string, fn func(t *table.Table, index int) error) error {
	path := args[0]
	return cli.Edit(cmd, path, func(t *table.Table) (any, error) {
		index, err := cli.ParseRow(args[1])
		if err != nil {
			return nil, err
		}
		if err := fn(t, index); err != nil {
			return nil, err
		}
		return rowResult(path, action, t, index)
	})
}
