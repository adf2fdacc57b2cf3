package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/logger"
)

// RequestLogger logs one structured line per request, at a level chosen by
// the response status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("session_id", GetSessionID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch logLevel(statusCode) {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}
	}
}

func logLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
