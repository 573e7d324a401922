package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tramo/internal/validation"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// periodToNull stores an unset edge as NULL
func periodToNull(period int) sql.NullInt64 {
	if period == validation.Unset {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(period), Valid: true}
}

// nullToPeriod is the inverse of periodToNull
func nullToPeriod(nv sql.NullInt64) int {
	if nv.Valid {
		return int(nv.Int64)
	}
	return validation.Unset
}

// fromMillis converts a stored timestamp back to UTC time
func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
