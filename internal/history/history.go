// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists an opt-in ledger of performed renames in a
// SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded rename.
type Entry struct {
	ID          int64
	Source      string
	Target      string
	PublishDate string
	Publisher   string
	Title       string
	RenamedAt   time.Time
}

// Store manages the rename ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS renames (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		target TEXT NOT NULL,
		publish_date TEXT,
		publisher TEXT,
		title TEXT,
		renamed_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one rename to the ledger. RenamedAt defaults to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	at := e.RenamedAt
	if at.IsZero() {
		at = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renames (source, target, publish_date, publisher, title, renamed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Source, e.Target, e.PublishDate, e.Publisher, e.Title,
		at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting rename: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, target, publish_date, publisher, title, renamed_at
		 FROM renames ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying renames: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &e.Source, &e.Target, &e.PublishDate, &e.Publisher, &e.Title, &at); err != nil {
			return nil, fmt.Errorf("scanning rename: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			e.RenamedAt = t
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
