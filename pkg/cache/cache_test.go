package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache[int], clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], _ *fakeClock) {
				c.Set("a", 1)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], clock *fakeClock) {
				c.Set("a", 1)
				clock.Advance(2 * time.Second)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict least recently used",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], _ *fakeClock) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Get("a")
				c.Set("c", 3)

				_, ok := c.Get("b")
				assert.False(t, ok, "expected b to be evicted")
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, 3, v)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], clock *fakeClock) {
				c.Set("a", 1)
				clock.Advance(600 * time.Millisecond)
				c.Set("a", 2)
				clock.Advance(600 * time.Millisecond)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], _ *fakeClock) {
				c.Set("a", 1)
				c.Delete("a")
				c.Delete("missing")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "set if keeps value when replace refuses",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], clock *fakeClock) {
				newer := func(cur int) bool { return cur < 5 }

				assert.True(t, c.SetIf("a", 5, newer))
				assert.False(t, c.SetIf("a", 4, func(cur int) bool { return cur < 4 }))

				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 5, v)
			},
		},
		{
			name:     "set if overwrites expired entry",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], clock *fakeClock) {
				c.Set("a", 5)
				clock.Advance(2 * time.Second)

				assert.True(t, c.SetIf("a", 4, func(int) bool { return false }))
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 4, v)
			},
		},
		{
			name:     "set if evicts oldest over capacity",
			capacity: 1,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], clock *fakeClock) {
				c.Set("a", 1)
				assert.True(t, c.SetIf("b", 2, func(int) bool { return true }))

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[int], clock *fakeClock) {
				c.Set("a", 1)
				c.Set("b", 2)
				clock.Advance(2 * time.Second)
				c.Set("c", 3)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[int](tt.capacity, tt.ttl, WithClock(clock.Now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewLRUCache[string](2, time.Second, WithClock(clock.Now), WithJanitorInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, c.Start(ctx))

	c.Set("a", "1")
	clock.Advance(2 * time.Second)

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
}
