package library

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// ListCmd returns the library list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored projects",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		svc, err := c.App.NewSession(0)
		if err != nil {
			return nil, err
		}
		entries, err := svc.ListLibrary(ctx)
		if err != nil {
			return nil, err
		}
		list := make(entryList, len(entries))
		for i, e := range entries {
			list[i] = newEntryView(e)
		}
		return list, nil
	})
}
