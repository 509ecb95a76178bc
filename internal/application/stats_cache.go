package application

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// statsCache stores recently computed meeting statistics so repeated
// dashboard reads do not rescan the collection while it is unchanged. The
// cache is invalidated on every mutation; entries also carry a TTL so a week
// rollover is picked up without a mutation.
type statsCache struct {
	now     func() time.Time
	ttl     time.Duration
	entries *lru.Cache[string, statsCacheEntry]
}

type statsCacheEntry struct {
	stats     MeetingStats
	expiresAt time.Time
}

func newStatsCache(ttl time.Duration, maxEntries int, now func() time.Time) *statsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if maxEntries <= 0 {
		maxEntries = 128
	}
	if now == nil {
		now = time.Now
	}
	entries, err := lru.New[string, statsCacheEntry](maxEntries)
	if err != nil {
		// lru.New only fails for a non-positive size, which is guarded above.
		panic(err)
	}
	return &statsCache{now: now, ttl: ttl, entries: entries}
}

func (c *statsCache) Get(key string) (MeetingStats, bool) {
	if c == nil {
		return MeetingStats{}, false
	}
	entry, ok := c.entries.Get(key)
	if !ok {
		return MeetingStats{}, false
	}
	if c.now().After(entry.expiresAt) {
		c.entries.Remove(key)
		return MeetingStats{}, false
	}
	return entry.stats, true
}

func (c *statsCache) Store(key string, stats MeetingStats) {
	if c == nil {
		return
	}
	c.entries.Add(key, statsCacheEntry{stats: stats, expiresAt: c.now().Add(c.ttl)})
}

func (c *statsCache) Invalidate() {
	if c == nil {
		return
	}
	c.entries.Purge()
}
