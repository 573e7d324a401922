// Package project implements the `tramo project` commands, which work on
// a whole project file.
package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create, inspect and export project files",
	}

	cmd.AddCommand(NewCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SummaryCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(DurationCmd())

	return cmd
}
