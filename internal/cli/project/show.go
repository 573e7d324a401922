package project

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show the tasks and summary row of a project",
		Long: `Show the tasks of a project as a chart with the per-period totals.

Examples:
  tramo project show plan.csv
  tramo project show plan.csv --markdown
  tramo project show plan.csv --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Bool("markdown", false, "Render as a markdown table")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	markdown, _ := cmd.Flags().GetBool("markdown")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		svc, err := c.App.OpenSession(path)
		if err != nil {
			return nil, err
		}
		view := cli.NewProjectView(path, svc.Project())
		if markdown && !jsonOutput {
			return markdownView{view}, nil
		}
		return view, nil
	})
}

// markdownView prints a project through glamour
type markdownView struct {
	cli.ProjectView
}

func (v markdownView) PrintHuman(w io.Writer) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(v.Markdown())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
