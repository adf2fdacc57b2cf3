// Package app wires the cart service together and runs it.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/http"
)

// App is a fully wired cart service.
type App struct {
	Router   *gin.Engine
	Storage  *StorageComponents
	Services *ServiceComponents

	routes *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	storage := InitializeStorage(ctx, cfg.Storage)
	services := InitializeServices(cfg, storage)
	verifier := InitializeAuth(cfg.Auth)
	routes := InitializeRouter(services, storage, verifier, cfg.Server)

	log.Info().
		Str("storage", storage.Driver).
		Bool("auth", verifier != nil).
		Bool("activity", storage.Activity != nil).
		Msg("Cart service initialized")

	return &App{
		Router:   http.NewRouter(routes.CartHandler, routes.CheckoutHandler, routes.HealthHandler, routes.Config),
		Storage:  storage,
		Services: services,
		routes:   routes,
	}
}

// Close stops background work and releases storage. Call it after the
// server has stopped accepting requests.
func (a *App) Close(ctx context.Context) {
	a.routes.Stop()
	a.Services.Stop()
	a.Storage.Close(ctx)
}
