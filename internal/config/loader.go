package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the portal.
type Config struct {
	SQLiteDSN string
	CacheTTL  time.Duration
	CacheSize int
}

// Load parses configuration values from the current process environment.
//
// The loader applies defaults for every field, so an empty environment is
// valid. Malformed values are collected and reported in one error.
func Load() (Config, error) {
	cfg := Config{
		SQLiteDSN: "file:portal.db?_foreign_keys=on",
		CacheTTL:  30 * time.Second,
		CacheSize: 128,
	}

	invalid := make([]string, 0, 2)

	if dsn := strings.TrimSpace(os.Getenv("PORTAL_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if ttlValue := strings.TrimSpace(os.Getenv("PORTAL_CACHE_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "PORTAL_CACHE_TTL")
		} else {
			cfg.CacheTTL = ttl
		}
	}

	if sizeValue := strings.TrimSpace(os.Getenv("PORTAL_CACHE_SIZE")); sizeValue != "" {
		size, err := strconv.Atoi(sizeValue)
		if err != nil || size <= 0 {
			invalid = append(invalid, "PORTAL_CACHE_SIZE")
		} else {
			cfg.CacheSize = size
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
