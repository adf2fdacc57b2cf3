package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a response stays replayable.
	IdempotencyKeyTTL = 10 * time.Minute
	// IdempotencyReplayedHeader marks a replayed response.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
)

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
	Timestamp   time.Time
}

// Idempotency replays the stored 2xx response of a POST/PUT/PATCH whose
// Idempotency-Key, session, path and body match an earlier request.
// A retried checkout therefore never reaches the order API twice.
type Idempotency struct {
	cache *idempotencyCache
}

// NewIdempotency creates the middleware state. A non-positive ttl uses
// IdempotencyKeyTTL.
func NewIdempotency(ttl time.Duration) *Idempotency {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return &Idempotency{cache: newIdempotencyCache(ttl)}
}

// Handler returns the gin middleware.
func (i *Idempotency) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := fingerprint(key, GetSessionID(c), c.Request)

		if cached, ok := i.cache.Get(cacheKey); ok {
			for k, v := range cached.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			i.cache.Set(cacheKey, &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Headers:     replayHeaders(writer.Header()),
				Body:        writer.body.Bytes(),
			})
		}
	}
}

// Stop releases the cleanup goroutine.
func (i *Idempotency) Stop() {
	i.cache.Stop()
}

func fingerprint(idempotencyKey, sessionID string, req *http.Request) string {
	hasher := sha256.New()
	for _, part := range []string{idempotencyKey, sessionID, req.Method, req.URL.Path} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write(bodyBytes)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// replayHeaders keeps the headers a client may rely on when a response is replayed.
func replayHeaders(h http.Header) map[string]string {
	out := make(map[string]string)
	for _, name := range []string{SessionHeader, "Location"} {
		if v := h.Get(name); v != "" {
			out[name] = v
		}
	}
	return out
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
