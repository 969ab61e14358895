// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/cubetui/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for solve data. Completed solves are written
// as they happen; the in-memory session history stays the statistics
// substrate and is never reloaded from here mid-session.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY,
			finished_at TEXT NOT NULL,
			time_ms INTEGER NOT NULL,
			ao5_ms INTEGER,
			ao12_ms INTEGER,
			scramble TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_solves_finished_at ON solves(finished_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSolve stores a completed solve and returns its row id.
func (s *Store) InsertSolve(ctx context.Context, finishedAt time.Time, solve model.Solve, scramble string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO solves (finished_at, time_ms, ao5_ms, ao12_ms, scramble)
		 VALUES (?, ?, ?, ?, ?)`,
		finishedAt.Format(time.RFC3339Nano),
		solve.Time.Milliseconds(),
		durationMs(solve.AO5),
		durationMs(solve.AO12),
		scramble,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListSolves returns stored solves filtered by stats config, oldest first.
func (s *Store) ListSolves(ctx context.Context, cfg model.StatsConfig) ([]model.StoredSolve, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "finished_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, finished_at, time_ms, ao5_ms, ao12_ms, scramble
		FROM solves
		WHERE %s
		ORDER BY finished_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var solves []model.StoredSolve
	for rows.Next() {
		var row model.StoredSolve
		var finishedAt string
		var timeMs int64
		var ao5Ms, ao12Ms sql.NullInt64
		if err := rows.Scan(&row.ID, &finishedAt, &timeMs, &ao5Ms, &ao12Ms, &row.Scramble); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, finishedAt)
		if err != nil {
			return nil, err
		}
		row.FinishedAt = parsed
		row.Time = time.Duration(timeMs) * time.Millisecond
		row.AO5 = msDuration(ao5Ms)
		row.AO12 = msDuration(ao12Ms)
		solves = append(solves, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return solves, nil
}

func durationMs(d *time.Duration) any {
	if d == nil {
		return nil
	}
	return d.Milliseconds()
}

func msDuration(v sql.NullInt64) *time.Duration {
	if !v.Valid {
		return nil
	}
	d := time.Duration(v.Int64) * time.Millisecond
	return &d
}
