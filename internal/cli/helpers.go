package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/services/table"
)

// ParseRow converts a 1-based row argument to a table index
func ParseRow(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: row %q is not a number", ErrInvalidArgument, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: row %d (rows start at 1)", table.ErrRowOutOfRange, n)
	}
	return n - 1, nil
}

// ParseInt parses a whole-number argument such as a period or a delta
func ParseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidArgument, what, s)
	}
	return n, nil
}

// CheckOverwrite fails with ErrFileExists when path exists and force is
// not set
func CheckOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}
	return nil
}

// Run sets up output and the application for a command, calls fn and
// prints its result. Errors from fn are reported and carry an exit code.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI) (any, error)) error {
	formatter := NewFormatter(cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := NewCLI(ctx)
	if err != nil {
		return Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	result, err := fn(ctx, cliInstance)
	if err != nil {
		return Fail(formatter, err)
	}
	if result == nil {
		return nil
	}
	return formatter.Success(result)
}

// Edit opens the project file at path, applies fn to its table and saves
// the file. Nothing is written when fn fails.
func Edit(cmd *cobra.Command, path string, fn func(t *table.Table) (any, error)) error {
	return Run(cmd, func(ctx context.Context, c *CLI) (any, error) {
		svc, err := c.App.OpenSession(path)
		if err != nil {
			return nil, err
		}
		result, err := fn(svc.Table())
		if err != nil {
			return nil, err
		}
		if err := svc.Save(path); err != nil {
			return nil, err
		}
		return result, nil
	})
}
