package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"quicklaunch/internal/store"
)

// History records application launches. It only feeds the status line and
// diagnostics; ranking never consults it.
type History struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS launches (
	exec          TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	count         INTEGER NOT NULL DEFAULT 0,
	last_launched INTEGER NOT NULL
);
`

// Open opens (creating if necessary) the launch history database at path.
func Open(path string) (*History, error) {
	if path == "" {
		return nil, errors.New("history path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &History{db: db}, nil
}

// DefaultPath returns the conventional history location,
// $XDG_DATA_HOME/quicklaunch/history.db with a ~/.local/share fallback.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "quicklaunch", "history.db")
}

// Close closes the underlying database.
func (h *History) Close() error { return h.db.Close() }

// Record notes one launch of the entry, bumping its count and timestamp.
func (h *History) Record(e *store.Entry) error {
	now := time.Now().UnixNano()
	_, err := h.db.Exec(`
		INSERT INTO launches(exec, name, count, last_launched) VALUES(?,?,1,?)
		ON CONFLICT(exec) DO UPDATE SET
			count = count + 1,
			last_launched = excluded.last_launched,
			name = excluded.name`,
		e.Exec, e.Name, now)
	if err != nil {
		return fmt.Errorf("recording launch of %s: %w", e.Name, err)
	}
	return nil
}

// Recent returns the names of the n most recently launched applications.
func (h *History) Recent(n int) ([]string, error) {
	rows, err := h.db.Query(
		`SELECT name FROM launches ORDER BY last_launched DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Count returns how many times the executable has been launched.
func (h *History) Count(execLine string) (int, error) {
	var count int
	err := h.db.QueryRow(
		`SELECT count FROM launches WHERE exec = ?`, execLine).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}
