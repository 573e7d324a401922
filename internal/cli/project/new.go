package project

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// NewCmd returns the project new subcommand
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty project file",
		Long: `Create an empty project file with the given number of periods.

Examples:
  tramo project new plan.csv --duration 12
  tramo project new plan.csv --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().Int("duration", 0, "Number of periods (defaults to project.default_duration)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	duration, _ := cmd.Flags().GetInt("duration")
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		if err := cli.CheckOverwrite(path, force); err != nil {
			return nil, err
		}
		if duration == 0 {
			duration = c.App.Config.Project.DefaultDuration
		}

		svc, err := c.App.NewSession(duration)
		if err != nil {
			return nil, err
		}
		if err := svc.Save(path); err != nil {
			return nil, err
		}
		return cli.Message{
			Text:  fmt.Sprintf("Created %s (%d periods)", path, svc.Table().Duration()),
			Value: path,
		}, nil
	})
}
