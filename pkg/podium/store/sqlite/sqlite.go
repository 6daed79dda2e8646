// Package sqlite implements store.Store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/cognicore/podium/pkg/podium/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	title TEXT,
	date_text TEXT,
	position INTEGER
);

CREATE TABLE IF NOT EXISTS paragraphs (
	doc_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY(doc_id, seq),
	FOREIGN KEY(doc_id) REFERENCES documents(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDocument inserts or replaces a document and its paragraphs.
// A replaced document keeps its original insertion position.
func (s *sqliteStore) UpsertDocument(ctx context.Context, d store.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int64
	err = tx.QueryRowContext(ctx,
		"SELECT position FROM documents WHERE id = ?", d.ID).Scan(&position)
	if err == sql.ErrNoRows {
		err = tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), 0) + 1 FROM documents").Scan(&position)
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, title, date_text, position)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, date_text=excluded.date_text`,
		d.ID, d.Title, d.Date, position)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM paragraphs WHERE doc_id = ?", d.ID); err != nil {
		return err
	}
	for i, p := range d.Paragraphs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO paragraphs (doc_id, seq, text) VALUES (?, ?, ?)",
			d.ID, i, p)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetDocument returns a document and its paragraphs in stored order.
func (s *sqliteStore) GetDocument(ctx context.Context, id string) (store.Document, bool, error) {
	var d store.Document
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, date_text FROM documents WHERE id = ?", id).
		Scan(&d.ID, &d.Title, &d.Date)
	if err == sql.ErrNoRows {
		return store.Document{}, false, nil
	}
	if err != nil {
		return store.Document{}, false, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT text FROM paragraphs WHERE doc_id = ? ORDER BY seq", id)
	if err != nil {
		return store.Document{}, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return store.Document{}, false, err
		}
		d.Paragraphs = append(d.Paragraphs, p)
	}
	if err := rows.Err(); err != nil {
		return store.Document{}, false, err
	}

	return d, true, nil
}

// ListIDs returns stored document IDs in insertion order.
func (s *sqliteStore) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM documents ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
