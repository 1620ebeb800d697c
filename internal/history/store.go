package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jask/termkit/console"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one persisted task run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Result     bool
	Failed     bool
	Lines      int
}

func (r Run) Duration() time.Duration { return r.FinishedAt.Sub(r.StartedAt) }

// Store keeps task runs in sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and migrates
// it.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir history dir: %w", err)
		}
	}
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, result, failed, lines)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.StartedAt.UTC().Format(timeLayout),
		r.FinishedAt.UTC().Format(timeLayout),
		r.Result,
		r.Failed,
		r.Lines,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.ID, err)
	}
	return nil
}

// RecordRun stores a run finished by a console.Terminal.
func (s *Store) RecordRun(ctx context.Context, r console.RunResult) error {
	return s.Record(ctx, Run{
		ID:         r.RunID,
		StartedAt:  r.Started,
		FinishedAt: r.Finished,
		Result:     r.Result,
		Failed:     r.Failed,
		Lines:      r.Lines,
	})
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, result, failed, lines
		FROM runs
		ORDER BY finished_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r                 Run
			started, finished string
		)
		if err := rows.Scan(&r.ID, &started, &finished, &r.Result, &r.Failed, &r.Lines); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if r.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
