package middleware

import (
	"sync"
	"time"
)

// idempotencyCache holds replayable responses keyed by request fingerprint.
type idempotencyCache struct {
	mu       sync.RWMutex
	items    map[string]*cachedResponse
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items:  make(map[string]*cachedResponse),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = time.Now()
	c.items[key] = resp
}

func (c *idempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup goroutine.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) startCleanup() {
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

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
