package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// ExportCmd returns the project export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a project as a spreadsheet CSV and/or a PDF chart",
		Long: `Export a project. At least one of --csv or --pdf is required.

Examples:
  tramo project export plan.csv --csv plan-export.csv
  tramo project export plan.csv --pdf plan.pdf --start-end=false
`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("csv", "", "Write the export CSV to this path")
	cmd.Flags().String("pdf", "", "Write the PDF chart to this path")
	cmd.Flags().Bool("start-end", true, "Include Start and End columns in the PDF (defaults to export.include_start_end)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	csvPath, _ := cmd.Flags().GetString("csv")
	pdfPath, _ := cmd.Flags().GetString("pdf")
	startEnd, _ := cmd.Flags().GetBool("start-end")
	startEndSet := cmd.Flags().Changed("start-end")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI) (any, error) {
		if csvPath == "" && pdfPath == "" {
			return nil, fmt.Errorf("%w: nothing to export, pass --csv and/or --pdf", cli.ErrInvalidArgument)
		}
		if !startEndSet {
			startEnd = c.App.Config.Export.IncludeStartEndColumns()
		}

		svc, err := c.App.OpenSession(path)
		if err != nil {
			return nil, err
		}

		var written []string
		if csvPath != "" {
			if err := svc.ExportCSV(csvPath); err != nil {
				return nil, err
			}
			written = append(written, csvPath)
		}
		if pdfPath != "" {
			if err := svc.ExportPDF(pdfPath, startEnd); err != nil {
				return nil, err
			}
			written = append(written, pdfPath)
		}

		return cli.Message{
			Text:  "Exported " + strings.Join(written, " and "),
			Value: strings.Join(written, "\n"),
		}, nil
	})
}
