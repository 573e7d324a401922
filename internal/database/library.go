package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tramo/internal/models"
)

// Entry describes a project stored in the library
type Entry struct {
	ID        string
	Name      string
	Duration  int
	TaskCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LibraryReader defines read operations on the library.
type LibraryReader interface {
	GetProject(ctx context.Context, name string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]Entry, error)
}

// LibraryWriter defines write operations on the library.
type LibraryWriter interface {
	SaveProject(ctx context.Context, name string, p *models.Project) (Entry, error)
	DeleteProject(ctx context.Context, name string) error
}

// Library combines all library operations.
type Library interface {
	LibraryReader
	LibraryWriter
}

var _ Library = (*LibraryRepo)(nil)

// LibraryRepo stores whole projects by name.
type LibraryRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLibrary wraps an initialized database connection
func NewLibrary(db *sql.DB) *LibraryRepo {
	return &LibraryRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// SaveProject stores p under name, replacing any project already saved
// under that name. The task rows are rewritten in one transaction.
func (r *LibraryRepo) SaveProject(ctx context.Context, name string, p *models.Project) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}
	if err := p.Validate(); err != nil {
		return Entry{}, fmt.Errorf("refusing to store project %q: %w", name, err)
	}

	now := r.now().Truncate(time.Millisecond)
	entry := Entry{Name: name, Duration: p.Duration, TaskCount: len(p.Tasks), UpdatedAt: now}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var created int64
		err := tx.QueryRowContext(ctx,
			`SELECT id, created_at FROM projects WHERE name = ?`, name,
		).Scan(&entry.ID, &created)
		entry.CreatedAt = fromMillis(created)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			entry.ID = uuid.NewString()
			entry.CreatedAt = now
			_, err = tx.ExecContext(ctx,
				`INSERT INTO projects (id, name, duration, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
				entry.ID, name, p.Duration, now.UnixMilli(), now.UnixMilli(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert project %q: %w", name, err)
			}
		case err != nil:
			return fmt.Errorf("failed to look up project %q: %w", name, err)
		default:
			_, err = tx.ExecContext(ctx,
				`UPDATE projects SET duration = ?, updated_at = ? WHERE id = ?`,
				p.Duration, now.UnixMilli(), entry.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update project %q: %w", name, err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, entry.ID); err != nil {
				return fmt.Errorf("failed to clear tasks of project %q: %w", name, err)
			}
		}

		for i, t := range p.Tasks {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (project_id, position, name, start_period, end_period, work_package)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				entry.ID, i, t.Name, periodToNull(t.Start), periodToNull(t.End), t.WorkPackage,
			)
			if err != nil {
				return fmt.Errorf("failed to insert task %d of project %q: %w", i+1, name, err)
			}
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}

	slog.Info("saved project to library", "name", name, "id", entry.ID, "tasks", entry.TaskCount)
	return entry, nil
}

// GetProject rebuilds the project stored under name. Stored data is
// validated the same way a project file is on load.
func (r *LibraryRepo) GetProject(ctx context.Context, name string) (*models.Project, error) {
	var id string
	p := &models.Project{Tasks: []models.Task{}}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, duration FROM projects WHERE name = ?`, strings.TrimSpace(name),
	).Scan(&id, &p.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %q: %w", name, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, start_period, end_period, work_package FROM tasks WHERE project_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks of project %q: %w", name, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	for rows.Next() {
		var (
			t          models.Task
			start, end sql.NullInt64
		)
		if err := rows.Scan(&t.Name, &start, &end, &t.WorkPackage); err != nil {
			return nil, fmt.Errorf("failed to scan task of project %q: %w", name, err)
		}
		t.Start, t.End = nullToPeriod(start), nullToPeriod(end)
		p.Tasks = append(p.Tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks of project %q: %w", name, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCorruptProject, name, err)
	}
	return p, nil
}

// ListProjects returns every library entry ordered by name
func (r *LibraryRepo) ListProjects(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.duration, COUNT(t.position), p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		GROUP BY p.id
		ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query library: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	entries := []Entry{}
	for rows.Next() {
		var (
			e                Entry
			created, updated int64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Duration, &e.TaskCount, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan library entry: %w", err)
		}
		e.CreatedAt, e.UpdatedAt = fromMillis(created), fromMillis(updated)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating library: %w", err)
	}
	return entries, nil
}

// DeleteProject removes the project stored under name and its tasks
func (r *LibraryRepo) DeleteProject(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete project %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion of project %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}
	slog.Info("deleted project from library", "name", name)
	return nil
}
