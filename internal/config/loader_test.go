package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"PORTAL_SQLITE_DSN",
			"PORTAL_CACHE_TTL",
			"PORTAL_CACHE_SIZE",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.SQLiteDSN != "file:portal.db?_foreign_keys=on" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.CacheTTL != 30*time.Second {
			t.Fatalf("expected default cache TTL 30s, got %s", cfg.CacheTTL)
		}
		if cfg.CacheSize != 128 {
			t.Fatalf("expected default cache size 128, got %d", cfg.CacheSize)
		}
	})

	t.Run("parses overrides", func(t *testing.T) {
		t.Setenv("PORTAL_SQLITE_DSN", "file:/tmp/portal.db")
		t.Setenv("PORTAL_CACHE_TTL", "2m")
		t.Setenv("PORTAL_CACHE_SIZE", "16")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.SQLiteDSN != "file:/tmp/portal.db" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.CacheTTL != 2*time.Minute {
			t.Fatalf("expected cache TTL 2m, got %s", cfg.CacheTTL)
		}
		if cfg.CacheSize != 16 {
			t.Fatalf("expected cache size 16, got %d", cfg.CacheSize)
		}
	})

	t.Run("collects invalid values", func(t *testing.T) {
		t.Setenv("PORTAL_SQLITE_DSN", "file:/tmp/portal.db")
		t.Setenv("PORTAL_CACHE_TTL", "not-a-duration")
		t.Setenv("PORTAL_CACHE_SIZE", "-3")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for invalid values")
		}
		if !strings.Contains(err.Error(), "PORTAL_CACHE_TTL") || !strings.Contains(err.Error(), "PORTAL_CACHE_SIZE") {
			t.Fatalf("expected both offending variables to be reported, got %q", err.Error())
		}
	})
}
