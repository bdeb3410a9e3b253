package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	ns    TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (ns, key)
);`

// SQLite is a file-backed KV. Writes are committed before Put returns, so a
// process kill immediately after a mutation does not lose the new state.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the store at path, creating parent
// directories as needed.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("storage: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}

	// Enable WAL mode for concurrent reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: set WAL mode: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ns, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE ns = ? AND key = ?`, ns, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: get: %w", err)
	}
	return value, true, nil
}

func (s *SQLite) Put(ns, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (ns, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (ns, key) DO UPDATE SET value = excluded.value`,
		ns, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: put: %w", err)
	}
	return nil
}

func (s *SQLite) Delete(ns, key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE ns = ? AND key = ?`, ns, key); err != nil {
		return fmt.Errorf("storage: delete: %w", err)
	}
	return nil
}

func (s *SQLite) All(ns string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM kv WHERE ns = ?`, ns)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: scan: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate: %w", err)
	}
	return out, nil
}

func (s *SQLite) DeleteAll(ns string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE ns = ?`, ns); err != nil {
		return fmt.Errorf("storage: delete all: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
