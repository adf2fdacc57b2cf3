package app

import (
	"time"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/http"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	CartHandler     *http.CartHandler
	CheckoutHandler *http.CheckoutHandler
	HealthHandler   *http.HealthHandler
	Config          http.RouterConfig
}

// InitializeRouter builds the handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	storage *StorageComponents,
	verifier service.TokenVerifier,
	cfg config.ServerConfig,
) *RouterComponents {
	health := http.NewHealthHandler()
	health.RegisterChecker("snapshots", storage.Snapshots)
	for _, cb := range storage.Breakers {
		health.RegisterCircuitBreaker(cb)
	}

	routerCfg := http.DefaultRouterConfig()
	if cfg.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.RequestTimeout
	}
	routerCfg.CORSOrigins = cfg.CORSOrigins
	routerCfg.SwaggerUser = cfg.SwaggerUser
	routerCfg.SwaggerPass = cfg.SwaggerPass
	routerCfg.TokenVerifier = verifier
	if cfg.RateLimit > 0 {
		window := cfg.RateWindow
		if window <= 0 {
			window = time.Minute
		}
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, window)
	}
	routerCfg.Idempotency = middleware.NewIdempotency(cfg.IdempotencyTTL)

	return &RouterComponents{
		CartHandler:     http.NewCartHandler(services.Carts),
		CheckoutHandler: http.NewCheckoutHandler(services.Checkout),
		HealthHandler:   health,
		Config:          routerCfg,
	}
}

// Stop stops the background goroutines owned by the middleware.
func (r *RouterComponents) Stop() {
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	if r.Config.Idempotency != nil {
		r.Config.Idempotency.Stop()
	}
}
