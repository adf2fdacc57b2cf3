package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/service"
)

// InitializeAuth returns the bearer token verifier, or nil when
// authentication is disabled and every session is anonymous.
func InitializeAuth(cfg config.AuthConfig) service.TokenVerifier {
	if !cfg.Enabled {
		return nil
	}
	if cfg.JWTSecret == "" {
		log.Warn().Msg("AUTH_ENABLED is set without JWT_SECRET_KEY - authentication disabled")
		return nil
	}
	return service.NewHMACTokenVerifier(cfg.JWTSecret, cfg.Issuer, cfg.Leeway)
}
