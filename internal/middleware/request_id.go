// Package middleware provides the gin middleware chain of the cart API.
//
// Handlers read the resolved request id, session id and customer claims
// through the Get* helpers rather than the raw context keys.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/cart-service/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// ContextKey names a value stored on the gin context by this package.
type ContextKey string

// RequestIDKey is the gin context key of the request id.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an id, echoed in X-Request-ID and
// attached to the request context for logs and the order API call.
// A client supplied id is reused when it is a plain token of at most 128
// characters; anything else is replaced by a UUID v4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validSessionID.MatchString(id) {
			id = uuid.NewString()
		}

		c.Set(string(RequestIDKey), id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request id, or "" outside the RequestID middleware.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(string(RequestIDKey))
	s, _ := id.(string)
	return s
}
