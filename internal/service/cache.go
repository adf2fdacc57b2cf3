package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/guttosm/cart-service/internal/service/cache"
)

// cachedTime is refreshed every 100ms and used for TTL bookkeeping.
var (
	cachedTime     atomic.Value
	cachedTimeOnce sync.Once
)

func init() {
	initCachedTime()
}

func initCachedTime() {
	cachedTimeOnce.Do(func() {
		cachedTime.Store(time.Now())
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for t := range ticker.C {
				cachedTime.Store(t)
			}
		}()
	})
}

// now returns the cached current time. Use it for non-critical checks only.
func now() time.Time {
	if t, ok := cachedTime.Load().(time.Time); ok {
		return t
	}
	return time.Now()
}

// ShardedCache spreads string keys over independently locked LRU shards.
type ShardedCache[V any] struct {
	shards    []*ttlCache[V]
	numShards int
	shardMask uint32
}

var _ cache.CacheWithMetrics[int] = (*ShardedCache[int])(nil)

// NewShardedCache creates a sharded cache holding about capacity entries,
// each living ttl after its last access. numShards is rounded up to a power of 2.
func NewShardedCache[V any](capacity int, ttl time.Duration, numShards int) *ShardedCache[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShardCapacity := capacity / numShards
	if perShardCapacity < 1 {
		perShardCapacity = 1
	}

	shards := make([]*ttlCache[V], numShards)
	for i := range shards {
		shards[i] = newTTLCache[V](perShardCapacity, ttl)
	}

	return &ShardedCache[V]{
		shards:    shards,
		numShards: numShards,
		shardMask: uint32(numShards - 1),
	}
}

func (sc *ShardedCache[V]) getShard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a live value.
func (sc *ShardedCache[V]) Get(key string) (V, bool) {
	return sc.getShard(key).Get(key)
}

// Set stores value under key.
func (sc *ShardedCache[V]) Set(key string, value V) {
	sc.getShard(key).Set(key, value)
}

// GetOrCreate returns the live value for key, or stores and returns the
// result of create. The bool reports whether the value already existed.
// create runs under the shard lock, so at most one value is ever created per key.
func (sc *ShardedCache[V]) GetOrCreate(key string, create func() V) (V, bool) {
	return sc.getShard(key).GetOrCreate(key, create)
}

// Invalidate removes key.
func (sc *ShardedCache[V]) Invalidate(key string) {
	sc.getShard(key).Invalidate(key)
}

// Len returns the number of entries across all shards.
func (sc *ShardedCache[V]) Len() int {
	total := 0
	for _, shard := range sc.shards {
		total += shard.Len()
	}
	return total
}

// Clear removes all entries from all shards.
func (sc *ShardedCache[V]) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop shuts down every shard's cleanup goroutine.
func (sc *ShardedCache[V]) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache[V]) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is one LRU shard with sliding TTL expiration.
type ttlCache[V any] struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry[V]
	head      *cacheEntry[V]
	tail      *cacheEntry[V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *cacheEntry[V]
	next      *cacheEntry[V]
}

func newTTLCache[V any](capacity int, ttl time.Duration) *ttlCache[V] {
	c := &ttlCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry[V], capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *ttlCache[V]) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *ttlCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// lookupLocked returns a live entry and refreshes its TTL and LRU position.
func (c *ttlCache[V]) lookupLocked(key string) (*cacheEntry[V], bool) {
	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordSessionCacheOperation("get", "miss")
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordSessionCacheOperation("get", "expired")
		return nil, false
	}
	entry.expiresAt = now().Add(c.ttl)
	c.moveToFront(entry)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordSessionCacheOperation("get", "hit")
	return entry, true
}

func (c *ttlCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.lookupLocked(key); ok {
		return entry.value, true
	}
	var zero V
	return zero, false
}

func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}
	c.insertLocked(key, value)
}

func (c *ttlCache[V]) GetOrCreate(key string, create func() V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.lookupLocked(key); ok {
		return entry.value, true
	}
	value := create()
	c.insertLocked(key, value)
	return value, false
}

func (c *ttlCache[V]) insertLocked(key string, value V) {
	entry := &cacheEntry[V]{
		key:       key,
		value:     value,
		expiresAt: now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordSessionCacheOperation("evict", "capacity")
	}
	metrics.RecordSessionCacheOperation("set", "success")
}

func (c *ttlCache[V]) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup drops expired entries.
func (c *ttlCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentTime := now()
	for _, entry := range c.items {
		if currentTime.After(entry.expiresAt) {
			c.removeEntry(entry)
			atomic.AddInt64(&c.evictions, 1)
			metrics.RecordSessionCacheOperation("evict", "expired")
		}
	}
}

func (c *ttlCache[V]) removeEntry(entry *cacheEntry[V]) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *ttlCache[V]) moveToFront(entry *cacheEntry[V]) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *ttlCache[V]) addToFront(entry *cacheEntry[V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[V]) remove(entry *cacheEntry[V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}

func (c *ttlCache[V]) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}

func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordSessionCacheOperation("invalidate", "success")
	}
}

func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry[V], c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordSessionCacheOperation("clear", "success")
}
