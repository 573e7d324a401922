package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/services/table"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file> <name>",
		Short: "Add a task",
		Long: `Add a task after the given row (default: at the end).

Examples:
  tramo task add plan.csv "Design" --start 1 --end 3
  tramo task add plan.csv "Build" --start 4 --end 8 --work-package
  tramo task add plan.csv "Kickoff" --after 0
`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}

	cmd.Flags().Int("start", 0, "First active period")
	cmd.Flags().Int("end", 0, "Last active period")
	cmd.Flags().Bool("work-package", false, "Mark the task as a work package")
	cmd.Flags().Int("after", -1, "Insert after this row (0 inserts at the top)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	workPackage, _ := cmd.Flags().GetBool("work-package")
	after, _ := cmd.Flags().GetInt("after")

	return cli.Edit(cmd, path, func(t *table.Table) (any, error) {
		afterIndex := after - 1
		if after < 0 {
			afterIndex = t.Len() - 1
		}
		index, err := t.InsertBlankAfter(afterIndex)
		if err != nil {
			return nil, err
		}
		// A rejected span fails the edit, so the file is never written.
		if err := fill(t, index, name, start, end, workPackage); err != nil {
			return nil, err
		}
		return rowResult(path, "Added", t, index)
	})
}

func fill(t *table.Table, index int, name string, start, end int, workPackage bool) error {
	if err := t.SetName(index, name); err != nil {
		return err
	}
	switch {
	case start != 0 && end != 0:
		if err := t.SetSpan(index, start, end); err != nil {
			return err
		}
	case start != 0:
		if err := t.SetStart(index, start); err != nil {
			return err
		}
	case end != 0:
		if err := t.SetEnd(index, end); err != nil {
			return err
		}
	}
	if workPackage {
		return t.ToggleWorkPackage(index)
	}
	return nil
}
