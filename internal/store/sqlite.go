// Package store keeps a SQLite log of project load outcomes for the
// admin dashboard.
package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// LoadEvent is one settled project load.
type LoadEvent struct {
	ID           int64     `json:"id"`
	Handle       string    `json:"handle"`
	Source       string    `json:"source"`
	ProjectCount int       `json:"project_count"`
	Status       string    `json:"status"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats summarizes the load log.
type Stats struct {
	TotalLoads   int64            `json:"total_loads"`
	BySource     map[string]int64 `json:"by_source"`
	LoadsToday   int64            `json:"loads_today"`
	LastError    string           `json:"last_error,omitempty"`
	LastErrorAt  *time.Time       `json:"last_error_at,omitempty"`
	RecentEvents []LoadEvent      `json:"recent_events"`
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and applies migrations.
// Pass ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and avoids
	// "database is locked" under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(entry.Name(), "%d_", &version); err != nil {
			return fmt.Errorf("parsing migration version from %q: %w", entry.Name(), err)
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}
	return nil
}

// RecordLoad appends an event. A zero CreatedAt is stamped with now.
func (s *Store) RecordLoad(ctx context.Context, e LoadEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO load_events (handle, source, project_count, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Handle, e.Source, e.ProjectCount, e.Status, e.Error, formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("recording load event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]LoadEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, handle, source, project_count, status, error, created_at
		FROM load_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying load events: %w", err)
	}
	defer rows.Close()

	var events []LoadEvent
	for rows.Next() {
		var e LoadEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Handle, &e.Source, &e.ProjectCount, &e.Status, &e.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning load event: %w", err)
		}
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Stats summarizes the log for the dashboard.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{BySource: make(map[string]int64)}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM load_events").Scan(&stats.TotalLoads); err != nil {
		return nil, fmt.Errorf("counting load events: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT source, COUNT(*) FROM load_events GROUP BY source")
	if err != nil {
		return nil, fmt.Errorf("counting by source: %w", err)
	}
	for rows.Next() {
		var source string
		var n int64
		if err := rows.Scan(&source, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning source count: %w", err)
		}
		stats.BySource[source] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM load_events WHERE created_at >= ?", formatTime(startOfDay),
	).Scan(&stats.LoadsToday); err != nil {
		return nil, fmt.Errorf("counting today's loads: %w", err)
	}

	var lastErr, lastErrAt string
	err = s.db.QueryRowContext(ctx, `
		SELECT error, created_at FROM load_events
		WHERE error != ''
		ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&lastErr, &lastErrAt)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, fmt.Errorf("querying last error: %w", err)
	default:
		at, err := parseTime(lastErrAt)
		if err != nil {
			return nil, err
		}
		stats.LastError = lastErr
		stats.LastErrorAt = &at
	}

	if stats.RecentEvents, err = s.Recent(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// Prune deletes events older than the retention window and reports how
// many were removed.
func (s *Store) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention)
	result, err := s.db.ExecContext(ctx, "DELETE FROM load_events WHERE created_at < ?", formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("pruning load events: %w", err)
	}
	return result.RowsAffected()
}

// Times are stored as fixed-width UTC text so string comparison orders them.
const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
