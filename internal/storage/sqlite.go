package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"rolodex/internal/book"
	dErrors "rolodex/pkg/domain-errors"
)

// SQLite stores the snapshot in an embedded database file. Save still
// replaces the whole snapshot in one transaction; the value over the JSON
// backend is durability under interruption and room to grow into partial
// updates later.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database and ensures the schema exists.
// The driver is pure Go, so no C toolchain or system sqlite is needed.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create database directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to open database")
	}
	db.SetMaxOpenConns(1)
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")

	schema := `
		CREATE TABLE IF NOT EXISTS contacts (
			position INTEGER PRIMARY KEY,
			name     TEXT NOT NULL UNIQUE,
			phones   TEXT NOT NULL,
			birthday TEXT
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create contacts table")
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Load(ctx context.Context) (*book.Book, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, phones, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read contacts")
	}
	defer rows.Close()

	var records []contactRecord
	for rows.Next() {
		var (
			rec        contactRecord
			phonesJSON string
			birthday   sql.NullString
		)
		if err := rows.Scan(&rec.Name, &phonesJSON, &birthday); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read contacts")
		}
		if err := json.Unmarshal([]byte(phonesJSON), &rec.Phones); err != nil {
			return nil, corruptSnapshot(s.path, err)
		}
		rec.Birthday = birthday.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read contacts")
	}
	return restore(records)
}

func (s *SQLite) Save(ctx context.Context, b *book.Book) error {
	if b == nil {
		return ErrNilBook
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to begin snapshot transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear contacts")
	}
	for i, rec := range snapshotOf(b) {
		phonesJSON, err := json.Marshal(rec.Phones)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode phones")
		}
		var birthday any
		if rec.Birthday != "" {
			birthday = rec.Birthday
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO contacts (position, name, phones, birthday) VALUES (?, ?, ?, ?)",
			i, rec.Name, string(phonesJSON), birthday,
		)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write contact")
		}
	}
	if err := tx.Commit(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit snapshot")
	}
	return nil
}
