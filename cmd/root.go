package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli"
	"github.com/thenoetrevino/tramo/internal/cli/library"
	"github.com/thenoetrevino/tramo/internal/cli/project"
	"github.com/thenoetrevino/tramo/internal/cli/styles"
	"github.com/thenoetrevino/tramo/internal/cli/task"
	"github.com/thenoetrevino/tramo/internal/config"
	"github.com/thenoetrevino/tramo/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "tramo [file]",
	Short: "Tramo - A terminal Gantt chart editor",
	Long: `Tramo edits Gantt charts: tasks laid out against numbered periods,
with a summary row counting the tasks active in each period.

Run without a subcommand to open the editor, optionally on a project file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if err := launcher.Launch(path); err != nil {
			code, _ := cli.Classify(err)
			fmt.Fprintln(os.Stderr, "Error:", err)
			return &cli.CodedError{Code: code, Err: err}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(library.LibraryCmd())

	cobra.OnInitialize(func() {
		cfg, err := config.Load()
		if err != nil {
			return
		}
		styles.Init(cfg.Theme)
	})
}

// Execute runs the root command and exits with the code its error carries
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *cli.CodedError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(cli.ExitUsage)
}
