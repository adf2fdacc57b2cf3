//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name           string
		numShards      int
		expectedShards int
	}{
		{name: "custom shard count", numShards: 4, expectedShards: 4},
		{name: "zero falls back to default", numShards: 0, expectedShards: defaultNumShards},
		{name: "negative falls back to default", numShards: -3, expectedShards: defaultNumShards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()
			assert.Len(t, rl.shards, tt.expectedShards)
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	for want := 2; want >= 0; want-- {
		allowed, remaining, _ := rl.allow("session:a")
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining, reset := rl.allow("session:a")
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.True(t, reset.After(time.Now()))

	allowed, _, _ = rl.allow("session:b")
	assert.True(t, allowed, "identifiers are limited independently")
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	allowed, _, _ := rl.allow("ip:1.2.3.4")
	assert.True(t, allowed)
	allowed, _, _ = rl.allow("ip:1.2.3.4")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _, _ = rl.allow("ip:1.2.3.4")
	assert.True(t, allowed)
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(50, time.Minute)
	defer rl.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _, _ := rl.allow("session:busy"); ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, granted)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), Session(), rl.RateLimit())
	router.GET("/api/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(session string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(SessionHeader, session)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := do("s1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do("s1").Code)

	limited := do("s1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Contains(t, limited.Body.String(), "rate_limit_exceeded")
	retry, err := strconv.Atoi(limited.Header().Get("Retry-After"))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)

	assert.Equal(t, http.StatusOK, do("s2").Code)
}

func TestRateLimiter_IdentifierFallsBackToIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.7:4242"
	assert.Equal(t, "ip:10.0.0.7", identifier(c))

	c.Set(string(SessionIDKey), "abc")
	assert.Equal(t, "session:abc", identifier(c))
}

func TestRateLimiter_CleanupAndStats(t *testing.T) {
	rl := NewShardedRateLimiter(5, 10*time.Millisecond, 4)
	rl.Stop()
	rl.Stop()

	rl.allow("a")
	rl.allow("b")
	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 4)

	time.Sleep(25 * time.Millisecond)
	rl.cleanupExpired()
	total, _ = rl.Stats()
	assert.Zero(t, total)
}
