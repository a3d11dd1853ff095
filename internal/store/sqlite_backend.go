package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"dutyroster/internal/domain"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteBackend stores each document as one row of a SQLite table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLiteBackend creates or opens the database at path.
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		documentsSchema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}
	return &SQLiteBackend{db: db}, nil
}

// Read returns the document body; a missing row is not an error.
func (b *SQLiteBackend) Read(key string) ([]byte, bool, error) {
	var body []byte
	err := b.db.QueryRow(`SELECT body FROM documents WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return body, true, nil
}

// Write upserts the document in a single statement.
func (b *SQLiteBackend) Write(key string, body []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		key, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete removes the document row.
func (b *SQLiteBackend) Delete(key string) error {
	if _, err := b.db.Exec(`DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Compile-time assertion that SQLiteBackend implements domain.DocumentBackend.
var _ domain.DocumentBackend = (*SQLiteBackend)(nil)
