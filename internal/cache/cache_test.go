package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestCache_GetSet(t *testing.T) {
	c := New(time.Hour)

	// Miss
	_, ok := c.Get("movie:550")
	assert.False(t, ok, "empty cache should miss")

	// Set and hit
	c.Set("movie:550", "Fight Club")
	got, ok := c.Get("movie:550")
	require.True(t, ok, "should hit after set")
	assert.Equal(t, "Fight Club", got)

	// Different key should miss
	_, ok = c.Get("tv:550")
	assert.False(t, ok, "different key should miss")
}

func TestCache_Overwrite(t *testing.T) {
	c := New(time.Hour)

	c.Set("search:multi:matrix", []string{"old"})
	c.Set("search:multi:matrix", []string{"new"})

	got, ok := c.Get("search:multi:matrix")
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_SetIdempotent(t *testing.T) {
	c := New(time.Hour)

	for i := 0; i < 5; i++ {
		c.Set("movie:1", "same")
		got, ok := c.Get("movie:1")
		require.True(t, ok)
		assert.Equal(t, "same", got)
	}
	assert.Equal(t, 1, c.Len())
}

func TestCache_Expiry(t *testing.T) {
	clock := newFakeClock()
	c := New(5*time.Minute, WithClock(clock.Now))

	c.Set("movie:550", "Fight Club")

	// Just before the TTL the value is still served
	clock.Advance(5*time.Minute - time.Nanosecond)
	got, ok := c.Get("movie:550")
	require.True(t, ok, "should hit before TTL")
	assert.Equal(t, "Fight Club", got)

	// At the TTL it is gone
	clock.Advance(time.Nanosecond)
	_, ok = c.Get("movie:550")
	assert.False(t, ok, "should miss once age reaches TTL")
}

func TestCache_ExpiredEntryIsRemoved(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Minute, WithClock(clock.Now))

	c.Set("tv:1399", "Game of Thrones")
	c.Set("tv:1400", "Other")
	require.Equal(t, 2, c.Len())

	clock.Advance(2 * time.Minute)

	_, ok := c.Get("tv:1399")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "expired entry should be deleted on read")

	c.Set("tv:1399", "Game of Thrones")
	got, ok := c.Get("tv:1399")
	require.True(t, ok, "re-set after expiry should be visible")
	assert.Equal(t, "Game of Thrones", got)
}

func TestCache_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, New(0).TTL())
	assert.Equal(t, DefaultTTL, New(-time.Second).TTL())
	assert.Equal(t, time.Second, New(time.Second).TTL())
}

func TestCache_ConcurrentDistinctKeys(t *testing.T) {
	c := New(time.Hour)

	const workers = 64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("movie:%d", i)
			for j := 0; j < 100; j++ {
				c.Set(key, j)
				_, _ = c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		got, ok := c.Get(fmt.Sprintf("movie:%d", i))
		require.True(t, ok)
		assert.Equal(t, 99, got, "final value should be the last write")
	}
}

func TestCache_ConcurrentSameKey(t *testing.T) {
	type payload struct {
		A, B int
	}
	c := New(time.Hour)

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("search:multi:x", payload{A: i, B: i})
		}(i)
	}
	wg.Wait()

	got, ok := c.Get("search:multi:x")
	require.True(t, ok)
	p, ok := got.(payload)
	require.True(t, ok)
	assert.Equal(t, p.A, p.B, "value should come from a single writer")
	assert.GreaterOrEqual(t, p.A, 0)
	assert.Less(t, p.A, writers)
}
