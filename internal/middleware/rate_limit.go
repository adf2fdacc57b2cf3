package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
)

const defaultNumShards = 16

type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter split into FNV-hashed shards to keep
// lock contention low under many concurrent sessions.
type RateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter allows rate requests per window for each identifier.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		stopCh:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

// allow consumes one token for identifier.
func (rl *RateLimiter) allow(identifier string) (allowed bool, remaining int, reset time.Time) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	v, exists := shard.visitors[identifier]
	if !exists || now.Sub(v.lastReset) > rl.window {
		v = &visitor{tokens: rl.rate, lastReset: now}
		shard.visitors[identifier] = v
	}
	reset = v.lastReset.Add(rl.window)

	if v.tokens <= 0 {
		return false, 0, reset
	}
	v.tokens--
	return true, v.tokens, reset
}

// RateLimit limits requests per cart session, falling back to client IP for
// requests that have no session yet.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, reset := rl.allow(identifier(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(reset).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.T(c, i18n.ErrKeyRateLimitExceeded)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

func identifier(c *gin.Context) string {
	if sessionID := GetSessionID(c); sessionID != "" {
		return "session:" + sessionID
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked identifiers, total and per shard.
func (rl *RateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
