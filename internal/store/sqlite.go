package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLiteBackend keeps every key as one row of the blobs table.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at path and runs the
// schema migration. Use MemoryPath for a throwaway database.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// One connection: an in-memory database is per connection, and a
	// single-user tool gains nothing from a pool.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	return b, nil
}

func (b *SQLiteBackend) migrate() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	return err
}

// Get reads one row.
func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put upserts all blobs in one transaction.
func (b *SQLiteBackend) Put(blobs ...Blob) error {
	ctx := context.Background()
	return b.withTransaction(ctx, func(tx *sql.Tx) error {
		return upsert(ctx, tx, blobs)
	})
}

// Update runs the read-modify-write inside BEGIN IMMEDIATE, which takes
// the database write lock before the first read. Other connections wait
// on busy_timeout instead of reading values about to change.
func (b *SQLiteBackend) Update(keys []string, fn func(current map[string][]byte) ([]Blob, error)) error {
	ctx := context.Background()
	conn, err := b.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("store: acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("store: begin immediate: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
		}
	}()

	current := make(map[string][]byte, len(keys))
	for _, key := range keys {
		var value string
		err := conn.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", key, err)
		}
		current[key] = []byte(value)
	}

	blobs, err := fn(current)
	if err != nil {
		return err
	}
	if err := upsert(ctx, conn, blobs); err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}

// execer is satisfied by both *sql.Tx and *sql.Conn.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, ex execer, blobs []Blob) error {
	now := timeNow().UTC().Format(time.RFC3339)
	for _, blob := range blobs {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			blob.Key, string(blob.Data), now)
		if err != nil {
			return fmt.Errorf("writing %s: %w", blob.Key, err)
		}
	}
	return nil
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// withTransaction runs fn inside a transaction, rolling back on error or
// panic and committing otherwise.
func (b *SQLiteBackend) withTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
