package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/service"
)

// RouterConfig holds router configuration options.
//
// RateLimiter and Idempotency are owned by the caller, which stops them on
// shutdown; nil disables the feature. A nil TokenVerifier serves every
// session anonymously.
type RouterConfig struct {
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RateLimiter    *middleware.RateLimiter
	Idempotency    *middleware.Idempotency
	TokenVerifier  service.TokenVerifier
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the cart service.
func NewRouter(carts *CartHandler, checkout *CheckoutHandler, health *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, health, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)
	registerCartRoutes(api, carts)
	registerCheckoutRoutes(api, checkout, &cfg)

	return router
}

func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

func registerInfrastructureRoutes(router *gin.Engine, health *HealthHandler, cfg *RouterConfig) {
	health.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware resolves the session of every API request. The
// rate limit runs after session resolution so it is keyed per session.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.TokenVerifier != nil {
		api.Use(middleware.JWTAuth(cfg.TokenVerifier, false))
	}
	api.Use(middleware.Session())
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}
}

func registerCartRoutes(api *gin.RouterGroup, h *CartHandler) {
	cartGroup := api.Group("/cart")
	cartGroup.GET("", h.GetCart)
	cartGroup.DELETE("", h.ClearCart)
	cartGroup.POST("/items", h.AddItem)
	cartGroup.PUT("/items/:id", h.SetQuantity)
	cartGroup.DELETE("/items/:id", h.RemoveItem)
	cartGroup.GET("/items/:id/quantity", h.GetQuantity)

	api.POST("/session/logout", h.Logout)
}

func registerCheckoutRoutes(api *gin.RouterGroup, h *CheckoutHandler, cfg *RouterConfig) {
	var chain []gin.HandlerFunc
	if cfg.TokenVerifier != nil {
		chain = append(chain, middleware.RequireCustomer())
	}
	if cfg.Idempotency != nil {
		chain = append(chain, cfg.Idempotency.Handler())
	}
	chain = append(chain, h.Checkout)
	api.POST("/checkout", chain...)
}
