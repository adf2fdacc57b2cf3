package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and answers 500 when the
// handler wrote nothing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()

		log := logger.Ctx(c.Request.Context())
		log.Error().
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			errorResp := dto.NewError(dto.ErrCodeInternal, i18n.T(c, i18n.ErrKeyInternalError)).
				WithRequestID(GetRequestID(c))
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
