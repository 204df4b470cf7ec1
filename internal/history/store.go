// Package history keeps a local SQLite log of describe invocations, so
// operators can recall which resources they inspected and with which query.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
PRAGMA journal_mode=WAL;

CREATE TABLE IF NOT EXISTS invocations (
    uuid        TEXT PRIMARY KEY,
    type_name   TEXT NOT NULL,
    query       TEXT DEFAULT '',
    format      TEXT NOT NULL DEFAULT 'json',
    item_count  INTEGER NOT NULL DEFAULT 0,
    status      TEXT NOT NULL DEFAULT 'ok',
    created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_invocations_type ON invocations(type_name);
CREATE INDEX IF NOT EXISTS idx_invocations_created ON invocations(created_at);
`

// Invocation is one recorded describe run.
type Invocation struct {
	UUID      string
	TypeName  string
	Query     string
	Format    string
	ItemCount int
	Status    string
	CreatedAt time.Time
}

// Store persists invocations in a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record appends one invocation and returns its assigned UUID.
func (s *Store) Record(typeName, queryText, format string, itemCount int, status string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO invocations (uuid, type_name, query, format, item_count, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, typeName, queryText, format, itemCount, status, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("recording invocation: %w", err)
	}
	return id, nil
}

// List returns the most recent invocations, newest first. A limit of zero or
// less means no limit.
func (s *Store) List(limit int) ([]Invocation, error) {
	q := `SELECT uuid, type_name, query, format, item_count, status, created_at
	      FROM invocations ORDER BY created_at DESC, uuid`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invocations: %w", err)
	}
	defer rows.Close()

	var invocations []Invocation
	for rows.Next() {
		var inv Invocation
		var createdAt string
		if err := rows.Scan(&inv.UUID, &inv.TypeName, &inv.Query, &inv.Format, &inv.ItemCount, &inv.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning invocation: %w", err)
		}
		inv.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		invocations = append(invocations, inv)
	}
	return invocations, rows.Err()
}
