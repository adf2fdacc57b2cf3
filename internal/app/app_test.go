//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/service"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantDriver string
	}{
		{
			name:       "memory driver",
			mutate:     func(*config.Config) {},
			wantDriver: config.DriverMemory,
		},
		{
			name: "unreachable postgres falls back to memory",
			mutate: func(c *config.Config) {
				c.Storage.Driver = config.DriverPostgres
				c.Storage.PostgresDSN = "://not-a-dsn"
			},
			wantDriver: config.DriverMemory,
		},
		{
			name: "auth enabled",
			mutate: func(c *config.Config) {
				c.Auth = config.AuthConfig{Enabled: true, JWTSecret: "secret"}
			},
			wantDriver: config.DriverMemory,
		},
		{
			name: "rate limiting disabled",
			mutate: func(c *config.Config) {
				c.Server.RateLimit = 0
			},
			wantDriver: config.DriverMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			a := InitializeApp(context.Background(), cfg)
			t.Cleanup(func() { a.Close(context.Background()) })

			require.NotNil(t, a.Router)
			assert.Equal(t, tt.wantDriver, a.Storage.Driver)
			assert.Nil(t, a.Storage.Activity)

			w := do(a.Router, http.MethodGet, "/healthz", "", nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestApp_CartAndCheckout(t *testing.T) {
	var received map[string]any
	orderAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"orderId":"ord-7","status":"pending"}`))
	}))
	defer orderAPI.Close()

	cfg := testConfig()
	cfg.Checkout.OrderAPIURL = orderAPI.URL
	a := InitializeApp(context.Background(), cfg)
	defer a.Close(context.Background())

	session := map[string]string{middleware.SessionHeader: "app-session"}

	w := do(a.Router, http.MethodPost, "/api/cart/items", `{"id":"burger-1","price":65,"quantity":2}`, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(a.Router, http.MethodPost, "/api/cart/items", `{"id":"biryani-2","price":175,"quantity":1}`, session)
	require.Equal(t, http.StatusOK, w.Code)

	snapshot, err := a.Storage.Snapshots.Get(context.Background(), service.SnapshotKey(cfg.Storage.KeyPrefix, "app-session"))
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot)

	w = do(a.Router, http.MethodPost, "/api/checkout", checkoutBody, session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			OrderID     string  `json:"orderId"`
			Subtotal    float64 `json:"subtotal"`
			DeliveryFee float64 `json:"deliveryFee"`
			Total       float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ord-7", resp.Data.OrderID)
	assert.Equal(t, 305.0, resp.Data.Subtotal)
	assert.Equal(t, 60.0, resp.Data.DeliveryFee)
	assert.Equal(t, 365.0, resp.Data.Total)
	assert.NotNil(t, received)

	w = do(a.Router, http.MethodGet, "/api/cart", "", session)
	assert.Contains(t, w.Body.String(), `"totalItems":0`)
}

func TestApp_CheckoutWithoutOrderAPI(t *testing.T) {
	a := InitializeApp(context.Background(), testConfig())
	defer a.Close(context.Background())

	session := map[string]string{middleware.SessionHeader: "no-orders"}
	do(a.Router, http.MethodPost, "/api/cart/items", `{"id":"burger-1","price":65,"quantity":1}`, session)

	w := do(a.Router, http.MethodPost, "/api/checkout", checkoutBody, session)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = do(a.Router, http.MethodGet, "/api/cart/items/burger-1/quantity", "", session)
	assert.Contains(t, w.Body.String(), `"quantity":1`)
}

func TestApp_Readiness(t *testing.T) {
	a := InitializeApp(context.Background(), testConfig())
	defer a.Close(context.Background())

	w := do(a.Router, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "snapshots")
}

func TestApp_CloseIsIdempotent(t *testing.T) {
	a := InitializeApp(context.Background(), testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NotPanics(t, func() {
		a.Close(ctx)
		a.Close(ctx)
	})
}
