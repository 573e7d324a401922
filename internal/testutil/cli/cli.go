// Package cli helps tests run cobra commands against a test App
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/app"
	"github.com/thenoetrevino/tramo/internal/cli"
)

// Result holds what a command printed
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes cmd with args, injecting testApp through the
// command context so no user config or library is touched
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - use testutil.NewTestApp")
	}

	// cobra reads os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
