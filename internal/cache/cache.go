// Package cache provides a fingerprint-keyed, TTL-bounded in-memory store for
// extraction results. It is a pure optimization: callers fall through to a
// fresh extraction on any miss, and the cache never fails a request.
package cache

import (
	"sync"
	"time"

	"github.com/jonathan/resume-parser/internal/types"
)

// Defaults for entry lifetime and the periodic sweep. Staleness is enforced
// at read time regardless of sweep cadence; the sweep only bounds worst-case
// memory growth.
const (
	DefaultTTL           = 5 * time.Minute
	DefaultSweepInterval = 10 * time.Minute
)

// entry is immutable once inserted; Put overwrites wholesale.
type entry struct {
	record     types.ResumeRecord
	insertedAt time.Time
}

// Cache is a mutex-guarded map from content fingerprint to a cached record
// with its insertion time. The zero value is not usable; construct with New.
//
// The clock is injected so tests can control staleness deterministically.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
	stopOnce    sync.Once
}

// Config holds cache construction parameters. Zero fields use defaults.
type Config struct {
	TTL           time.Duration
	SweepInterval time.Duration
	Now           func() time.Time // defaults to time.Now
}

// New creates a cache. The periodic sweep does not run until StartSweeper is
// called, so short-lived callers (CLI, tests) pay nothing for it.
func New(cfg Config) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Cache{
		entries:       make(map[string]entry),
		ttl:           cfg.TTL,
		sweepInterval: cfg.SweepInterval,
		now:           cfg.Now,
		sweepStop:     make(chan struct{}),
	}
}

// Get returns the cached record for a fingerprint if it is still fresh.
// Stale entries behave as absent; they are not evicted here, the sweep (or an
// overwrite) reclaims them.
func (c *Cache) Get(fingerprint string) (types.ResumeRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[fingerprint]
	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		return types.ResumeRecord{}, false
	}
	return e.record, true
}

// Put inserts or overwrites the record for a fingerprint, resetting its
// insertion time to now.
func (c *Cache) Put(fingerprint string, record types.ResumeRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = entry{record: record, insertedAt: c.now()}
}

// InsertedAt returns when the fingerprint's entry was stored, for freshness
// assertions. The second return is false when the entry is absent.
func (c *Cache) InsertedAt(fingerprint string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[fingerprint]
	return e.insertedAt, ok
}

// Sweep removes every entry at or past the TTL and returns how many were
// removed. It takes the same lock as Get/Put.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for fp, e := range c.entries {
		if now.Sub(e.insertedAt) >= c.ttl {
			delete(c.entries, fp)
			removed++
		}
	}
	return removed
}

// Clear drops all entries and returns how many were removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.entries)
	c.entries = make(map[string]entry)
	return removed
}

// StartSweeper launches the periodic sweep goroutine. Stop terminates it.
func (c *Cache) StartSweeper() {
	c.sweepTicker = time.NewTicker(c.sweepInterval)
	go func() {
		for {
			select {
			case <-c.sweepTicker.C:
				c.Sweep()
			case <-c.sweepStop:
				return
			}
		}
	}()
}

// Stop terminates the sweep goroutine. Safe to call more than once, and
// without a prior StartSweeper.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		if c.sweepTicker != nil {
			c.sweepTicker.Stop()
		}
		close(c.sweepStop)
	})
}

// Stats is a point-in-time snapshot for the observability endpoint.
type Stats struct {
	Entries     int      `json:"entries"`
	TTLSeconds  float64  `json:"ttl_seconds"`
	ApproxBytes int      `json:"approx_bytes"`
	Keys        []string `json:"keys"`
}

// Stats reports current entry count, TTL, approximate memory footprint, and
// the fingerprint keys. Stale-but-unswept entries are included: they still
// occupy storage.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		Entries:    len(c.entries),
		TTLSeconds: c.ttl.Seconds(),
		Keys:       make([]string, 0, len(c.entries)),
	}
	for fp, e := range c.entries {
		stats.Keys = append(stats.Keys, fp)
		stats.ApproxBytes += len(fp) + e.record.ApproxSize()
	}
	return stats
}
