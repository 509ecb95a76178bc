// Package store provides the integrity-checked persistence layer of the
// portal. Values are wrapped in an envelope carrying a SHA-256 digest of the
// payload; envelopes whose digest no longer matches are treated as absent so
// callers never observe tampered or corrupted data.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/business-portal/internal/persistence"
)

// envelope is the persisted wire shape for every key.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Hash      string          `json:"hash"`
	Timestamp int64           `json:"timestamp"`
}

// Store wraps a durable key/value backend with digest verification.
type Store struct {
	backend persistence.KVRepository
	now     func() time.Time
	logger  *slog.Logger
}

// New wires a Store over the given backend. The now function stamps
// envelopes at write time; a nil now falls back to time.Now.
func New(backend persistence.KVRepository, now func() time.Time, logger *slog.Logger) *Store {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, now: now, logger: logger}
}

// Put serializes value, computes its digest and persists the envelope as a
// full overwrite of key. The digest is returned so callers can correlate
// writes. Backend failures are logged and returned; nothing is written
// partially.
func (s *Store) Put(ctx context.Context, key string, value any) (string, error) {
	if s == nil || s.backend == nil {
		return "", fmt.Errorf("store: backend not configured")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("store: value is not serializable: %w", err)
	}

	digest, err := Digest(value)
	if err != nil {
		return "", err
	}

	writtenAt := s.now()
	raw, err := json.Marshal(envelope{
		Data:      payload,
		Hash:      digest,
		Timestamp: writtenAt.UnixMilli(),
	})
	if err != nil {
		return "", fmt.Errorf("store: failed to encode envelope: %w", err)
	}

	record := persistence.Record{Key: key, Envelope: raw, UpdatedAt: writtenAt}
	if err := s.backend.Put(ctx, record); err != nil {
		s.logger.Error("failed to persist envelope", "key", key, "error", err)
		return "", fmt.Errorf("store: failed to persist %q: %w", key, err)
	}

	return digest, nil
}

// Get loads the envelope at key and decodes its payload into dest. The
// returned bool reports whether a trustworthy value was found: missing keys,
// malformed envelopes and digest mismatches all yield (false, nil). A
// corrupted envelope is logged and left in place, merely not trusted for
// this read. Backend read failures other than not-found are returned.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	if s == nil || s.backend == nil {
		return false, fmt.Errorf("store: backend not configured")
	}

	record, err := s.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return false, nil
		}
		s.logger.Error("failed to load envelope", "key", key, "error", err)
		return false, fmt.Errorf("store: failed to load %q: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(record.Envelope, &env); err != nil {
		s.logger.Warn("discarding malformed envelope", "key", key, "error", err)
		return false, nil
	}
	if len(env.Data) == 0 || env.Hash == "" {
		s.logger.Warn("discarding incomplete envelope", "key", key)
		return false, nil
	}

	var payload any
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		s.logger.Warn("discarding unreadable payload", "key", key, "error", err)
		return false, nil
	}

	digest, err := Digest(payload)
	if err != nil {
		s.logger.Warn("failed to recompute digest", "key", key, "error", err)
		return false, nil
	}
	if digest != env.Hash {
		s.logger.Warn("digest mismatch, treating key as absent", "key", key)
		return false, nil
	}

	if dest != nil {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			s.logger.Warn("payload does not match destination shape", "key", key, "error", err)
			return false, nil
		}
	}
	return true, nil
}
