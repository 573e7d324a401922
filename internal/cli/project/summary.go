package project

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/summary"
)

// SummaryCmd returns the project summary subcommand
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Print how many tasks are active in each period",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// summaryResult is the per-period count of active tasks
type summaryResult struct {
	Counts []int `json:"counts"`
	Peak   int   `json:"peak"`
}

func (r summaryResult) QuietValue() string { return strconv.Itoa(r.Peak) }

func (r summaryResult) PrintHuman(w io.Writer) error {
	var b strings.Builder
	for i, n := range r.Counts {
		fmt.Fprintf(&b, "%4d: %d\n", i+1, n)
	}
	fmt.Fprintf(&b, "peak: %d\n", r.Peak)
	_, err := io.WriteString(w, b.String())
	return err
}

func runSummary(cmd *cobra.Command, args []string) error {
	path := args[0]

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		svc, err := c.App.OpenSession(path)
		if err != nil {
			return nil, err
		}
		counts := svc.Summary()
		return summaryResult{Counts: counts, Peak: summary.Peak(counts)}, nil
	})
}
