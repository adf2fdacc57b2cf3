package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
)

// DefaultRequestTimeout bounds a request when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// Timeout puts a deadline on the request context and answers 504 when the
// handler has not finished in time. Handlers that honour ctx (snapshot
// stores, the order API client) stop early; the rest are simply not waited for.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var finished bool
		done := make(chan struct{})
		panicked := make(chan interface{}, 1)

		go func() {
			defer func() {
				if r := recover(); r != nil {
					panicked <- r
				}
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			select {
			case p := <-panicked:
				panic(p)
			default:
			}
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}
			errorResp := dto.NewError(dto.ErrCodeTimeout, i18n.T(c, i18n.ErrKeyTimeout)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
		}
	}
}
