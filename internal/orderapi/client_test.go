//go:build !integration

package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *OrderRequest {
	return &OrderRequest{
		Items: []OrderItem{
			{MealID: "burger-1", Name: "Burger", Quantity: 2, UnitPrice: 65, Subtotal: 130},
		},
		Subtotal:      130,
		DeliveryFee:   60,
		Total:         190,
		Shipping:      Shipping{Area: "Gulshan", Address: "Road 11"},
		Contact:       Contact{Name: "Rahim", Phone: "01700000000"},
		PaymentMethod: "cash_on_delivery",
	}
}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("posts the order with headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Equal(t, "key-1", r.Header.Get(IdempotencyKeyHeader))
			assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got OrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, 190.0, got.Total)
			assert.Len(t, got.Items, 1)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"orderId":"ord-42","status":"pending","total":190}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL+"/", time.Second)
		resp, err := c.CreateOrder(context.Background(), sampleOrder(), CallOptions{
			BearerToken:    "tok",
			IdempotencyKey: "key-1",
			RequestID:      "req-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "ord-42", resp.OrderID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("omits optional headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.Empty(t, r.Header.Get(IdempotencyKeyHeader))
			_, _ = w.Write([]byte(`{"orderId":"ord-1"}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).CreateOrder(context.Background(), sampleOrder(), CallOptions{})
		require.NoError(t, err)
	})

	tests := []struct {
		name      string
		status    int
		body      string
		wantMsg   string
		wantRetry bool
	}{
		{name: "json message", status: http.StatusUnprocessableEntity, body: `{"message":"area not served"}`, wantMsg: "area not served"},
		{name: "json error", status: http.StatusBadRequest, body: `{"error":"bad phone"}`, wantMsg: "bad phone"},
		{name: "plain text", status: http.StatusBadGateway, body: "upstream down", wantMsg: "upstream down", wantRetry: true},
		{name: "empty body", status: http.StatusServiceUnavailable, body: "", wantMsg: "Service Unavailable", wantRetry: true},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "", wantMsg: "Too Many Requests", wantRetry: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).CreateOrder(context.Background(), sampleOrder(), CallOptions{})

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantRetry, apiErr.Temporary())
			assert.Contains(t, apiErr.Error(), tt.wantMsg)
		})
	}

	t.Run("malformed success body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).CreateOrder(context.Background(), sampleOrder(), CallOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode order response")
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewClient("", time.Second).CreateOrder(context.Background(), sampleOrder(), CallOptions{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("context canceled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewClientWithHTTPClient(srv.URL, srv.Client()).CreateOrder(ctx, sampleOrder(), CallOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
