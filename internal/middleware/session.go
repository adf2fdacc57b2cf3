package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/logger"
)

const (
	// SessionHeader carries the anonymous cart session id.
	SessionHeader = "X-Cart-Session"
	// SessionIDKey is the gin context key of the resolved session id.
	SessionIDKey ContextKey = "session_id"
)

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_:\-]{1,128}$`)

// Session resolves the cart session of the request.
//
// A session already set by JWTAuth wins. Otherwise the X-Cart-Session header
// is used, and when it is missing a fresh cuid is issued and echoed back in
// the same header so the client can keep it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := GetSessionID(c)
		if sessionID == "" {
			sessionID = c.GetHeader(SessionHeader)
			if sessionID == "" {
				sessionID = cuid.New()
			} else if !validSessionID.MatchString(sessionID) {
				errorResp := dto.NewError(dto.ErrCodeInvalidRequest, i18n.T(c, i18n.ErrKeySessionRequired)).
					WithRequestID(GetRequestID(c)).
					WithDetail("session", "must be 1-128 characters of [A-Za-z0-9_:-]")
				c.AbortWithStatusJSON(http.StatusBadRequest, errorResp)
				return
			}
			c.Header(SessionHeader, sessionID)
		}

		setSession(c, sessionID)
		c.Next()
	}
}

func setSession(c *gin.Context, sessionID string) {
	c.Set(string(SessionIDKey), sessionID)
	c.Request = c.Request.WithContext(logger.WithSessionID(c.Request.Context(), sessionID))
}

// GetSessionID returns the resolved session id, or "" before Session ran.
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(string(SessionIDKey)); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
