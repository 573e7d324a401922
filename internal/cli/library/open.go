package library

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// OpenCmd returns the library open subcommand
func OpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <name> <file>",
		Short: "Write a stored project to a file",
		Long: `Write the project stored under <name> to <file> in the project
file format.

Examples:
  tramo library open "Q3 roadmap" plan.csv
  tramo library open "Q3 roadmap" plan.csv --force
`,
		Args: cobra.ExactArgs(2),
		RunE: runOpen,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		if err := cli.CheckOverwrite(path, force); err != nil {
			return nil, err
		}
		svc, err := c.App.NewSession(0)
		if err != nil {
			return nil, err
		}
		if err := svc.OpenFromLibrary(ctx, name); err != nil {
			return nil, err
		}
		if err := svc.Save(path); err != nil {
			return nil, err
		}
		return cli.Message{
			Text:  fmt.Sprintf("Wrote %q to %s (%d tasks)", name, path, svc.Table().Len()),
			Value: path,
		}, nil
	})
}
