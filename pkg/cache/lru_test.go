package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lipsum/pkg/cache"
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
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestLRU_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		assert.False(t, c.Put("a", 1))
		assert.False(t, c.Put("b", 2))

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("missing key", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		v, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("update existing", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		c.Put("a", 1)
		assert.True(t, c.Put("a", 2))

		v, _ := c.Get("a")
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("remove", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		c.Put("a", 1)
		assert.True(t, c.Remove("a"))
		assert.False(t, c.Remove("a"))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	var evicted []string
	c := cache.NewLRU(2, cache.WithEvictCallback(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // b is now least recently used
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.ElementsMatch(t, []string{"b", "a", "c"}, evicted)
}

func TestLRU_TTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewLRU(4,
		cache.WithTTL[string, string](time.Minute),
		cache.WithClock[string, string](clock.Now),
	)

	c.Put("seed:1", "lorem")
	clock.Advance(30 * time.Second)
	v, ok := c.Get("seed:1")
	require.True(t, ok)
	assert.Equal(t, "lorem", v)

	clock.Advance(30 * time.Second)
	_, ok = c.Get("seed:1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	c.Put("seed:2", "ipsum")
	clock.Advance(50 * time.Second)
	c.Put("seed:2", "dolor")
	clock.Advance(50 * time.Second)
	v, ok = c.Get("seed:2")
	require.True(t, ok, "writes refresh expiry")
	assert.Equal(t, "dolor", v)
}

func TestLRU_Stats(t *testing.T) {
	c := cache.NewLRU[int, int](2)
	c.Put(1, 1)
	c.Get(1)
	c.Get(1)
	c.Get(2)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestLRU_Concurrent(t *testing.T) {
	c := cache.NewLRU[string, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				key := fmt.Sprintf("k%d", (g*i)%100)
				c.Put(key, i)
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := cache.NewMemory(2, 0)

	_, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "a", "lorem"))
	require.NoError(t, m.Set(ctx, "b", "ipsum"))
	require.NoError(t, m.Set(ctx, "c", "dolor"))

	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok, "oldest entry is evicted")
	v, ok, _ := m.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "dolor", v)
	assert.Equal(t, 2, m.Len())
}

func BenchmarkLRU(b *testing.B) {
	c := cache.NewLRU[int, string](1024)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.Put(i%2048, "value")
		c.Get(i % 1024)
		i++
	}
}
