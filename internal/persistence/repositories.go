package persistence

import "context"

// KVRepository exposes the durable key/value namespace backing the portal.
// Put is a full overwrite of the record at key; there is no delete
// primitive, callers clear a key by writing a replacement envelope.
type KVRepository interface {
	Put(ctx context.Context, record Record) error
	Get(ctx context.Context, key string) (Record, error)
	Keys(ctx context.Context) ([]string, error)
}
