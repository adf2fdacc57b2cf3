package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/config"
)

// testConfig returns an in-memory configuration with logging disabled.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RateLimit:      1000,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
			IdempotencyTTL: time.Minute,
		},
		Storage: config.StorageConfig{
			Driver:                         config.DriverMemory,
			KeyPrefix:                      "cart:",
			SnapshotTTL:                    time.Hour,
			ActivityTTL:                    time.Hour,
			RecordEvents:                   true,
			CircuitBreakerFailureThreshold: 3,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
		Session: config.SessionConfig{
			CacheSize:   100,
			CacheTTL:    time.Minute,
			CacheShards: 4,
		},
		Checkout: config.CheckoutConfig{
			Timeout:            time.Second,
			DefaultDeliveryFee: 80,
			DeliveryFees:       map[string]float64{"Gulshan": 60},
		},
		Log: config.LogConfig{Level: "disabled"},
	}
}

const checkoutBody = `{
	"shipping": {"area": "Gulshan", "address": "House 12, Road 5", "city": "Dhaka"},
	"contact": {"name": "Rahim", "phone": "+8801711000000"},
	"paymentMethod": "cod"
}`

func do(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
