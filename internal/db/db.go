package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sqlite connection backing the response cache.
type DB struct {
	*sql.DB
	clock clockwork.Clock
}

// CachedEntry is one cached API response.
type CachedEntry struct {
	Key       string
	Data      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewDB opens (or creates) the cache database at path and ensures the
// schema exists. Pass ":memory:" for an ephemeral cache.
func NewDB(path string, clock clockwork.Clock) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{DB: conn, clock: clock}, nil
}

func initSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS response_cache (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			expires_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_response_cache_expires
			ON response_cache (expires_at);
	`)
	return err
}

// GetCached returns the cached entry for key, or nil when the key is
// absent or the entry has expired.
func (d *DB) GetCached(key string) (*CachedEntry, error) {
	row := d.QueryRow(
		"SELECT key, data, created_at, expires_at FROM response_cache WHERE key = ?",
		key,
	)

	var e CachedEntry
	if err := row.Scan(&e.Key, &e.Data, &e.CreatedAt, &e.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("cache lookup: %w", err)
	}

	if !d.clock.Now().Before(e.ExpiresAt) {
		return nil, nil
	}
	return &e, nil
}

// SetCached stores data under key with the given time-to-live,
// replacing any previous entry.
func (d *DB) SetCached(key, data string, ttl time.Duration) error {
	now := d.clock.Now()
	_, err := d.Exec(
		"INSERT OR REPLACE INTO response_cache (key, data, created_at, expires_at) VALUES (?, ?, ?, ?)",
		key, data, now, now.Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

// PurgeExpired removes entries whose TTL has elapsed, returning how
// many rows were deleted.
func (d *DB) PurgeExpired() (int64, error) {
	res, err := d.Exec("DELETE FROM response_cache WHERE expires_at <= ?", d.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return res.RowsAffected()
}
