package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/orderapi"
	"github.com/guttosm/cart-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Carts    *service.CartServiceImpl
	Checkout *service.CheckoutServiceImpl
	Recorder *service.ActivityRecorder
}

// InitializeServices builds the cart and checkout services over storage.
func InitializeServices(cfg config.Config, storage *StorageComponents) *ServiceComponents {
	recorder := service.NewActivityRecorder(storage.Activity, service.DefaultActivityRecorderConfig())

	carts := service.NewCartService(storage.Snapshots, recorder, service.CartServiceConfig{
		KeyPrefix:   cfg.Storage.KeyPrefix,
		CacheSize:   cfg.Session.CacheSize,
		CacheTTL:    cfg.Session.CacheTTL,
		CacheShards: cfg.Session.CacheShards,
	})

	if cfg.Checkout.OrderAPIURL == "" {
		log.Warn().Msg("ORDER_API_URL is not set - checkout will fail")
	}
	orders := orderapi.NewClient(cfg.Checkout.OrderAPIURL, cfg.Checkout.Timeout)
	fees := service.NewDeliveryFees(cfg.Checkout.DefaultDeliveryFee, cfg.Checkout.DeliveryFees)

	return &ServiceComponents{
		Carts:    carts,
		Checkout: service.NewCheckoutService(carts, orders, fees, recorder),
		Recorder: recorder,
	}
}

// Stop stops the session cache and flushes pending activity.
func (s *ServiceComponents) Stop() {
	s.Carts.Stop()
	s.Recorder.Stop()
}
