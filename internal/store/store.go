// Package store persists remap's state in a single SQLite file: the
// session collection as one JSON blob under a fixed key, plus an
// append-only event log behind it for statistics.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sidmehta/remap/internal/session"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the database handle and hands out repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a Store on the SQLite database at dsn, applying recommended
// pragmas and creating tables as needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying handle for raw queries.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// SessionRepo returns the session-collection repository backed by this
// store.
func (s *Store) SessionRepo() session.Repo {
	return &sessionRepo{db: s.db}
}

// EventRepo returns the study-event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// applyPragmas configures SQLite for single-user interactive use.
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

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS answer_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence   INTEGER NOT NULL,
			timestamp  TIMESTAMP NOT NULL,
			session_id TEXT NOT NULL,
			file_name  TEXT NOT NULL,
			node_id    TEXT NOT NULL,
			node_text  TEXT NOT NULL,
			input      TEXT NOT NULL,
			correct    BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS hint_events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence   INTEGER NOT NULL,
			timestamp  TIMESTAMP NOT NULL,
			session_id TEXT NOT NULL,
			file_name  TEXT NOT NULL,
			node_id    TEXT NOT NULL,
			hint_count INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. REMAP_DB environment variable
// 2. $XDG_DATA_HOME/remap/remap.db
// 3. ~/.local/share/remap/remap.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("REMAP_DB"); p != "" {
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

	p := filepath.Join(dataHome, "remap", "remap.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
