// Package progress persists per-day training records: which tasks were
// completed, the derived star count, session-completion flags, session
// durations, streaks, and the parent PIN.
//
// Storage failures degrade instead of surfacing: reads fall back to an
// empty record, writes are dropped, and both log a warning. A storage
// problem must never interrupt a child mid-exercise.
package progress

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Period is a named training window.
type Period string

const (
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
)

// Periods lists the training periods in daily order.
var Periods = []Period{PeriodMorning, PeriodEvening}

// DayKey formats a time as the calendar-date key records are stored under,
// in local time.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Store is the SQLite-backed progress store.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open creates a Store on the SQLite database at dsn, applying the
// recommended pragmas and running idempotent migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite is single-writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db, log: slog.Default()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate runs idempotent schema migrations. The three record families
// are kept in separate tables on purpose: task completions, session
// timing logs, and the plain done-today flags are independent stores.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS task_completions (
			day          TEXT NOT NULL,
			task_id      TEXT NOT NULL,
			completed_at INTEGER NOT NULL,
			PRIMARY KEY (day, task_id)
		)`,
		`CREATE TABLE IF NOT EXISTS session_logs (
			day              TEXT NOT NULL,
			period           TEXT NOT NULL,
			completed_at     INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			PRIMARY KEY (day, period)
		)`,
		`CREATE TABLE IF NOT EXISTS session_flags (
			day    TEXT NOT NULL,
			period TEXT NOT NULL,
			PRIMARY KEY (day, period)
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_day ON task_completions(day)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. EYEBRIGHT_DB environment variable
// 2. $XDG_DATA_HOME/eyebright/eyebright.db
// 3. ~/.local/share/eyebright/eyebright.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("EYEBRIGHT_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "eyebright", "eyebright.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// warn logs a storage failure that was swallowed.
func (s *Store) warn(op string, err error) {
	s.log.Warn("progress store degraded", "op", op, "err", err)
}
