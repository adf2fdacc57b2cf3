package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/service"
)

const (
	// BearerTokenKey is the gin context key of the raw bearer token.
	BearerTokenKey ContextKey = "bearer_token"
	// ClaimsKey is the gin context key of the verified customer claims.
	ClaimsKey ContextKey = "customer_claims"
	// CustomerSessionPrefix namespaces sessions owned by a signed-in customer.
	CustomerSessionPrefix = "customer:"
)

// JWTAuth validates the Authorization bearer token with verifier. A valid
// token binds the cart session to the token subject.
//
// With required false a request without an Authorization header passes
// through untouched and falls back to the anonymous session header; a
// present but invalid token is always rejected.
func JWTAuth(verifier service.TokenVerifier, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abortUnauthorized(c, i18n.ErrKeyTokenRequired)
				return
			}
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(BearerTokenKey), tokenString)
		c.Set(string(ClaimsKey), claims)
		setSession(c, CustomerSessionPrefix+claims.Subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.T(c, key)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}

// GetBearerToken returns the verified bearer token, or "".
func GetBearerToken(c *gin.Context) string {
	if v, ok := c.Get(string(BearerTokenKey)); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// GetClaims returns the verified customer claims, or nil for anonymous requests.
func GetClaims(c *gin.Context) *service.CustomerClaims {
	if v, ok := c.Get(string(ClaimsKey)); ok {
		if claims, ok := v.(*service.CustomerClaims); ok {
			return claims
		}
	}
	return nil
}

// RequireCustomer rejects requests JWTAuth did not authenticate.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetClaims(c) == nil {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}
		c.Next()
	}
}
