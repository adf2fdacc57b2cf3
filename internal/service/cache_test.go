//go:build !integration

package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: 16},
		{name: "default shards when negative", numShards: -1, wantShards: 16},
		{name: "rounds up to power of 2", numShards: 3, wantShards: 4},
		{name: "exact power of 2", numShards: 8, wantShards: 8},
		{name: "rounds 5 to 8", numShards: 5, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewShardedCache[int](100, time.Minute, tt.numShards)
			defer c.Stop()

			assert.Equal(t, tt.wantShards, c.numShards)
			assert.Equal(t, uint32(tt.wantShards-1), c.shardMask)
			assert.Len(t, c.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	c := NewShardedCache[string](100, time.Minute, 4)
	defer c.Stop()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("s1", "one")
	c.Set("s2", "two")
	c.Set("s1", "uno")

	v, ok := c.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "uno", v)
	assert.Equal(t, 2, c.Len())
}

func TestShardedCache_GetOrCreate(t *testing.T) {
	c := NewShardedCache[*int](100, time.Minute, 4)
	defer c.Stop()

	var created int32
	create := func() *int {
		atomic.AddInt32(&created, 1)
		v := 7
		return &v
	}

	var wg sync.WaitGroup
	results := make([]*int, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.GetOrCreate("session", create)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created)
	for _, r := range results {
		assert.Same(t, results[0], r)
	}

	_, existed := c.GetOrCreate("session", create)
	assert.True(t, existed)
}

func TestShardedCache_Expiry(t *testing.T) {
	c := NewShardedCache[string](10, 50*time.Millisecond, 1)
	defer c.Stop()

	c.Set("s1", "v")
	time.Sleep(250 * time.Millisecond)

	_, ok := c.Get("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestShardedCache_LRUEviction(t *testing.T) {
	c := NewShardedCache[int](2, time.Minute, 1)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB, "least recently used entry is evicted")
	assert.True(t, okC)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestShardedCache_InvalidateAndClear(t *testing.T) {
	c := NewShardedCache[int](100, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("s%d", i), i)
	}
	c.Invalidate("s3")
	c.Invalidate("unknown")

	_, ok := c.Get("s3")
	assert.False(t, ok)
	assert.Equal(t, 9, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Metrics().Hits)
}

func TestShardedCache_Metrics(t *testing.T) {
	c := NewShardedCache[int](64, time.Minute, 4)
	defer c.Stop()

	c.Set("a", 1)
	_, _ = c.Get("a")
	_, _ = c.Get("b")

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 64, m.Capacity)
}

func TestShardedCache_StopIsIdempotent(t *testing.T) {
	c := NewShardedCache[int](10, time.Minute, 2)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}
