// Package storage provides SQLite-based persistence for session traces.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flappy-arcade/internal/trace"
)

// ErrNotFound is returned when a trace ID does not exist.
var ErrNotFound = errors.New("storage: trace not found")

// Store manages the SQLite database connection for trace persistence.
type Store struct {
	db *sql.DB
}

// TraceSummary describes a stored trace without its events.
type TraceSummary struct {
	ID        int64
	Seed      int64
	FPS       int
	Events    int
	Inputs    int
	Duration  time.Duration
	StartedAt time.Time
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS traces (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			fps INTEGER NOT NULL,
			config TEXT NOT NULL,
			started_at_ns INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			event_count INTEGER NOT NULL DEFAULT 0,
			input_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS trace_events (
			trace_id INTEGER NOT NULL REFERENCES traces(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			offset_ns INTEGER NOT NULL,
			timer INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (trace_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTrace stores tr and its events in one transaction.
// Returns the ID of the inserted trace.
func (s *Store) SaveTrace(tr trace.Trace) (int64, error) {
	inputs := 0
	for _, ev := range tr.Events {
		if ev.Kind.IsInput() {
			inputs++
		}
	}

	var startedAt int64
	if !tr.StartedAt.IsZero() {
		startedAt = tr.StartedAt.UnixNano()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO traces (seed, fps, config, started_at_ns, duration_ns, event_count, input_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tr.Seed, tr.FPS, string(tr.Config), startedAt,
		int64(tr.Duration()), len(tr.Events), inputs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save trace: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO trace_events (trace_id, seq, kind, offset_ns, timer) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for i, ev := range tr.Events {
		if _, err := stmt.Exec(id, i, string(ev.Kind), int64(ev.Offset), ev.Timer); err != nil {
			return 0, fmt.Errorf("storage: cannot save event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit trace: %w", err)
	}
	return id, nil
}

// ListTraces returns the most recent traces, newest first.
func (s *Store) ListTraces(limit int) ([]TraceSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, fps, event_count, input_count, duration_ns, started_at_ns, created_at
		 FROM traces
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query traces: %w", err)
	}
	defer rows.Close()

	var summaries []TraceSummary
	for rows.Next() {
		var ts TraceSummary
		var duration, startedAt int64
		var createdAt any
		if err := rows.Scan(&ts.ID, &ts.Seed, &ts.FPS, &ts.Events, &ts.Inputs, &duration, &startedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ts.Duration = time.Duration(duration)
		if startedAt != 0 {
			ts.StartedAt = time.Unix(0, startedAt)
		}
		ts.CreatedAt = parseTime(createdAt)
		summaries = append(summaries, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// LoadTrace retrieves a trace and its events.
func (s *Store) LoadTrace(id int64) (trace.Trace, error) {
	tr := trace.Trace{ID: id}
	var config string
	var startedAt int64

	err := s.db.QueryRow(
		"SELECT seed, fps, config, started_at_ns FROM traces WHERE id = ?",
		id,
	).Scan(&tr.Seed, &tr.FPS, &config, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return trace.Trace{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return trace.Trace{}, fmt.Errorf("storage: cannot query trace: %w", err)
	}
	tr.Config = []byte(config)
	if startedAt != 0 {
		tr.StartedAt = time.Unix(0, startedAt)
	}

	rows, err := s.db.Query(
		"SELECT kind, offset_ns, timer FROM trace_events WHERE trace_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return trace.Trace{}, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev trace.Event
		var kind string
		var offset int64
		if err := rows.Scan(&kind, &offset, &ev.Timer); err != nil {
			return trace.Trace{}, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		ev.Kind = trace.Kind(kind)
		ev.Offset = time.Duration(offset)
		tr.Events = append(tr.Events, ev)
	}

	if err := rows.Err(); err != nil {
		return trace.Trace{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tr, nil
}

// DeleteTrace removes a trace and its events.
func (s *Store) DeleteTrace(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM trace_events WHERE trace_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM traces WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete trace: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
