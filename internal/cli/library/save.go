package library

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// SaveCmd returns the library save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file> <name>",
		Short: "Store a project file in the library",
		Long: `Store the project in <file> under <name>, replacing any project
already stored under that name.

Examples:
  tramo library save plan.csv "Q3 roadmap"
`,
		Args: cobra.ExactArgs(2),
		RunE: runSave,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		svc, err := c.App.OpenSession(path)
		if err != nil {
			return nil, err
		}
		entry, err := svc.SaveToLibrary(ctx, name)
		if err != nil {
			return nil, err
		}
		return newEntryView(entry), nil
	})
}
