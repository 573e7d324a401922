package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/services/table"
)

// RemoveCmd returns the task remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <file> <row>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(2),
		RunE:    runRemove,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	path := args[0]
	return cli.Edit(cmd, path, func(t *table.Table) (any, error) {
		index, err := cli.ParseRow(args[1])
		if err != nil {
			return nil, err
		}
		task, err := t.Task(index)
		if err != nil {
			return nil, err
		}
		if err := t.Remove(index); err != nil {
			return nil, err
		}
		return cli.Message{
			Text:  fmt.Sprintf("Removed row %d: %q", index+1, task.Name),
			Value: fmt.Sprint(t.Len()),
		}, nil
	})
}

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <file> <row> <up|down>",
		Short: "Swap a task with its neighbour",
		Args:  cobra.ExactArgs(3),
		RunE:  runMove,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	path := args[0]
	return cli.Edit(cmd, path, func(t *table.Table) (any, error) {
		index, err := cli.ParseRow(args[1])
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(args[2]) {
		case "up":
			if err := t.MoveUp(index); err != nil {
				return nil, err
			}
			index--
		case "down":
			if err := t.MoveDown(index); err != nil {
				return nil, err
			}
			index++
		default:
			return nil, fmt.Errorf("%w: direction %q (want up or down)", cli.ErrInvalidArgument, args[2])
		}
		return rowResult(path, "Moved", t, index)
	})
}
