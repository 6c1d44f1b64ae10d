// Package cache persists per-document symbol records to an on-disk
// SQLite database, grounded on the bucket-of-key/value-pairs format
// and the sqlite wiring in code-watch's internal/data/queue and
// sacenox-symb's internal/store.
package cache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cespare/xxhash/v2"
	_ "modernc.org/sqlite"

	"github.com/shinyvision/phpindex/internal/symbol"
)

const schema = `
CREATE TABLE IF NOT EXISTS buckets (
	uri_hash INTEGER NOT NULL,
	seq      INTEGER NOT NULL,
	key      TEXT NOT NULL,
	value    BLOB NOT NULL,
	PRIMARY KEY (uri_hash, seq)
);
CREATE INDEX IF NOT EXISTS idx_buckets_uri_hash ON buckets(uri_hash);
`

// Cache is a SQLite-backed store of symbol.Record values keyed by
// document URI. Two URIs that collide on their xxhash share a bucket;
// Get resolves the collision with a linear scan comparing the stored
// literal key.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path.
func Open(path string) (*Cache, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: ping %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func uriHash(uri string) int64 {
	return int64(xxhash.Sum64String(uri))
}

// Put stores rec under uri, replacing any prior record for that exact
// URI within the bucket.
func (c *Cache) Put(ctx context.Context, uri string, rec symbol.Record) error {
	data, err := symbol.MarshalRecord(rec)
	if err != nil {
		return err
	}
	hash := uriHash(uri)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache: begin put tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM buckets WHERE uri_hash = ? AND key = ?`, hash, uri); err != nil {
		return fmt.Errorf("cache: clear stale row for %q: %w", uri, err)
	}

	var next int64
	row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), -1) + 1 FROM buckets WHERE uri_hash = ?`, hash)
	if err := row.Scan(&next); err != nil {
		return fmt.Errorf("cache: allocate seq for %q: %w", uri, err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO buckets (uri_hash, seq, key, value) VALUES (?, ?, ?, ?)`, hash, next, uri, data); err != nil {
		return fmt.Errorf("cache: insert row for %q: %w", uri, err)
	}
	return tx.Commit()
}

// Get retrieves the record stored for uri, resolving any uri_hash
// collision by scanning the bucket for the matching literal key.
func (c *Cache) Get(ctx context.Context, uri string) (symbol.Record, bool, error) {
	hash := uriHash(uri)
	rows, err := c.db.QueryContext(ctx, `SELECT key, value FROM buckets WHERE uri_hash = ?`, hash)
	if err != nil {
		return symbol.Record{}, false, fmt.Errorf("cache: query bucket for %q: %w", uri, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return symbol.Record{}, false, fmt.Errorf("cache: scan bucket row: %w", err)
		}
		if key != uri {
			continue
		}
		rec, err := symbol.UnmarshalRecord(value)
		if err != nil {
			return symbol.Record{}, false, err
		}
		return rec, true, nil
	}
	if err := rows.Err(); err != nil {
		return symbol.Record{}, false, fmt.Errorf("cache: iterate bucket for %q: %w", uri, err)
	}
	return symbol.Record{}, false, nil
}

// Delete removes any record stored for uri.
func (c *Cache) Delete(ctx context.Context, uri string) error {
	hash := uriHash(uri)
	if _, err := c.db.ExecContext(ctx, `DELETE FROM buckets WHERE uri_hash = ? AND key = ?`, hash, uri); err != nil {
		return fmt.Errorf("cache: delete %q: %w", uri, err)
	}
	return nil
}
