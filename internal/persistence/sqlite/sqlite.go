package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/business-portal/internal/persistence"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	envelope   TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Storage implements persistence.KVRepository over a SQLite database. Each
// key holds a single envelope row; writes are full overwrites.
type Storage struct {
	pool  *ConnectionPool
	retry RetryConfig
}

// Open creates a Storage for the given DSN.
func Open(dsn string) (*Storage, error) {
	pool, err := NewConnectionPool(dsn)
	if err != nil {
		return nil, err
	}
	return &Storage{pool: pool, retry: DefaultRetryConfig()}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	return s.pool.Close()
}

// Migrate applies the key/value schema. The schema is a single table, so the
// statement is idempotent and runs on every start.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.pool.DB().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", mapError(err))
	}
	return nil
}

// Put stores the record, replacing any previous row at the same key.
func (s *Storage) Put(ctx context.Context, record persistence.Record) error {
	if record.Key == "" {
		return fmt.Errorf("sqlite: empty key")
	}

	return withRetry(ctx, s.retry, func() error {
		return s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO kv_entries (key, envelope, updated_at) VALUES (?, ?, ?)
				ON CONFLICT(key) DO UPDATE SET envelope = excluded.envelope, updated_at = excluded.updated_at
			`, record.Key, string(record.Envelope), record.UpdatedAt.UTC().Format(time.RFC3339Nano))
			return err
		})
	})
}

// Get loads the record stored at key. Missing keys map to persistence.ErrNotFound.
func (s *Storage) Get(ctx context.Context, key string) (persistence.Record, error) {
	var (
		envelope  string
		updatedAt string
	)

	err := withRetry(ctx, s.retry, func() error {
		return s.pool.DB().QueryRowContext(ctx,
			`SELECT envelope, updated_at FROM kv_entries WHERE key = ?`, key,
		).Scan(&envelope, &updatedAt)
	})
	if err != nil {
		return persistence.Record{}, err
	}

	record := persistence.Record{Key: key, Envelope: []byte(envelope)}
	if ts, parseErr := time.Parse(time.RFC3339Nano, updatedAt); parseErr == nil {
		record.UpdatedAt = ts
	}
	return record, nil
}

// Keys returns every stored key in lexical order.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.pool.DB().QueryContext(ctx, `SELECT key FROM kv_entries ORDER BY key`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, mapError(err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return keys, nil
}

var _ persistence.KVRepository = (*Storage)(nil)
