package library

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// DeleteCmd returns the library delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a stored project",
		Args:    cobra.ExactArgs(1),
		RunE:    runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		svc, err := c.App.NewSession(0)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteFromLibrary(ctx, name); err != nil {
			return nil, err
		}
		return cli.Message{Text: fmt.Sprintf("Deleted %q from the library", name), Value: name}, nil
	})
}
