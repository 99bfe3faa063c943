// Package cache provides the in-memory TTL cache shared by all request handlers.
//
// Entries expire lazily: there is no background sweep, an expired entry is
// removed by the first Get that observes it. There is no size bound; memory is
// only reclaimed when a key is overwritten, read after expiry, or the process
// restarts.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a value stays visible after Set.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value      any
	insertedAt time.Time
}

// Cache is a mutex-guarded map from string key to value with a fixed TTL.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value stored under key.
// Returns nil, false if the key is unknown or its entry has reached the TTL;
// an expired entry is deleted in the same critical section.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:      value,
		insertedAt: c.now(),
	}
}

// Len returns the number of stored entries, including expired ones that have
// not been read since they expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
