// Package snapshot mirrors the live session to a small on-device SQLite
// database so a restart picks up where the user left off. It is a best-effort
// cache: a missing or unreadable snapshot never prevents startup.
package snapshot

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store persists one serialized session blob.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at dir/session.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "session.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS session_state (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		state      BLOB NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save replaces the stored session blob.
func (s *Store) Save(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO session_state (id, state, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		data,
	)
	return err
}

// Load returns the stored session blob. ok is false when nothing was saved yet.
func (s *Store) Load() (data []byte, ok bool, err error) {
	err = s.db.QueryRow(`SELECT state FROM session_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Clear removes the stored session blob.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session_state WHERE id = 1`)
	return err
}

// Close closes the snapshot database.
func (s *Store) Close() error {
	return s.db.Close()
}
