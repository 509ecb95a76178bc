package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/business-portal/internal/persistence"
	"github.com/example/business-portal/internal/persistence/sqlite"
	"github.com/example/business-portal/internal/store"
)

// SQLiteHarness provides a migrated SQLite key-value backend and an
// integrity-checked store on top of it for integration-style tests.
type SQLiteHarness struct {
	Backend persistence.KVRepository
	Store   *store.Store

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a SQLiteHarness using a temporary file that is
// migrated automatically. Callers may optionally invoke Close, but the helper
// will also register a cleanup callback with the provided testing.TB.
func NewSQLiteHarness(tb testing.TB, clock *Clock) *SQLiteHarness {
	tb.Helper()

	dir := tb.TempDir()
	path := filepath.Join(dir, "portal.db")

	storage, err := sqlite.Open(path)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	if err := storage.Migrate(context.Background()); err != nil {
		_ = storage.Close()
		tb.Fatalf("failed to migrate storage: %v", err)
	}

	harness := &SQLiteHarness{
		Backend: storage,
		Store:   store.New(storage, clock.NowFunc(), nil),
		cleanup: func() {
			_ = storage.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
