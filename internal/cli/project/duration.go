package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// DurationCmd returns the project duration subcommand
func DurationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration <file> <periods>",
		Short: "Change the number of periods",
		Long: `Change the number of periods of a project. Spans that no longer fit
are clamped to the new range.

Examples:
  tramo project duration plan.csv 24
`,
		Args: cobra.ExactArgs(2),
		RunE: runDuration,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDuration(cmd *cobra.Command, args []string) error {
	path := args[0]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		duration, err := cli.ParseInt("duration", args[1])
		if err != nil {
			return nil, err
		}
		svc, err := c.App.OpenSession(path)
		if err != nil {
			return nil, err
		}
		if err := svc.ChangeDuration(duration); err != nil {
			return nil, err
		}
		if err := svc.Save(path); err != nil {
			return nil, err
		}
		return cli.NewProjectView(path, svc.Project()), nil
	})
}
