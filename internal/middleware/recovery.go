package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/logger"
)

// Recovery turns a handler panic into a 500 envelope. The panic value and
// stack are logged with the request and session ids; neither reaches the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			l := logger.Ctx(c.Request.Context())
			l.Error().
				Interface("panic", rec).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("session_id", GetSessionID(c)).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from handler panic")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			resp := dto.NewError(dto.ErrCodeInternal, i18n.T(c, i18n.ErrKeyInternalError)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
