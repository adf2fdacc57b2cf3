//go:build !integration

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/mocks"
	"github.com/guttosm/cart-service/internal/service"
)

const testSession = "sess-1"

func mixedCart() model.Cart {
	return model.NewCart([]model.LineItem{
		{ID: "burger-1", Name: "Classic Burger", Price: 65, Quantity: 2},
		{ID: "biryani-2", Name: "Kacchi Biryani", Price: 175, Quantity: 1},
	})
}

func newMockRouter(carts *mocks.MockCartService, checkout *mocks.MockCheckoutService) *gin.Engine {
	return NewRouter(NewCartHandler(carts), NewCheckoutHandler(checkout), NewHealthHandler(), DefaultRouterConfig())
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(middleware.SessionHeader, testSession)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.RequestID)
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCartHandler(t *testing.T) {
	invalidPrice := fmt.Errorf("%w: %w", cart.ErrInvalidItem, model.ErrPriceNegative)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*mocks.MockCartService)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "get cart",
			method: http.MethodGet,
			path:   "/api/cart",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Get", mock.Anything, testSession).Return(mixedCart(), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				got := decodeData[dto.CartResponse](t, w)
				assert.Equal(t, 3, got.TotalItems)
				assert.Equal(t, 305.0, got.TotalPrice)
				assert.Len(t, got.Items, 2)
			},
		},
		{
			name:   "empty cart serializes items as array",
			method: http.MethodGet,
			path:   "/api/cart",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Get", mock.Anything, testSession).Return(model.NewCart(nil), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"items":[]`)
			},
		},
		{
			name:   "add item",
			method: http.MethodPost,
			path:   "/api/cart/items",
			body:   `{"id":"burger-1","name":"Classic Burger","price":65,"quantity":2,"mealType":"lunch"}`,
			setupMocks: func(m *mocks.MockCartService) {
				m.On("AddItem", mock.Anything, testSession, mock.MatchedBy(func(it model.LineItem) bool {
					return it.ID == "burger-1" && it.Quantity == 2 && it.Price == 65 && it.MealType == "lunch"
				})).Return(model.NewCart([]model.LineItem{{ID: "burger-1", Price: 65, Quantity: 2}}), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				got := decodeData[dto.CartResponse](t, w)
				assert.Equal(t, 130.0, got.TotalPrice)
			},
		},
		{
			name:           "add item with malformed body",
			method:         http.MethodPost,
			path:           "/api/cart/items",
			body:           `{"price":65}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, dto.ErrCodeInvalidRequest, decodeError(t, w).Error)
			},
		},
		{
			name:   "add invalid item",
			method: http.MethodPost,
			path:   "/api/cart/items",
			body:   `{"id":"x","price":-1,"quantity":1}`,
			setupMocks: func(m *mocks.MockCartService) {
				m.On("AddItem", mock.Anything, testSession, mock.Anything).Return(model.Cart{}, invalidPrice)
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidItem, resp.Error)
				assert.Equal(t, map[string]string{"price": "must not be negative"}, resp.Details)
			},
		},
		{
			name:   "set quantity",
			method: http.MethodPut,
			path:   "/api/cart/items/burger-1",
			body:   `{"quantity":5}`,
			setupMocks: func(m *mocks.MockCartService) {
				m.On("SetQuantity", mock.Anything, testSession, "burger-1", 5).Return(model.NewCart([]model.LineItem{{ID: "burger-1", Price: 65, Quantity: 5}}), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "set quantity zero is allowed",
			method: http.MethodPut,
			path:   "/api/cart/items/burger-1",
			body:   `{"quantity":0}`,
			setupMocks: func(m *mocks.MockCartService) {
				m.On("SetQuantity", mock.Anything, testSession, "burger-1", 0).Return(model.NewCart(nil), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "set quantity past the bound",
			method: http.MethodPut,
			path:   "/api/cart/items/burger-1",
			body:   `{"quantity":1000}`,
			setupMocks: func(m *mocks.MockCartService) {
				m.On("SetQuantity", mock.Anything, testSession, "burger-1", 1000).
					Return(model.Cart{}, fmt.Errorf("%w: %w", cart.ErrInvalidItem, model.ErrQuantityTooLarge))
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidItem, resp.Error)
				assert.Equal(t, map[string]string{"quantity": "must not exceed 999"}, resp.Details)
			},
		},
		{
			name:           "set quantity requires a number",
			method:         http.MethodPut,
			path:           "/api/cart/items/burger-1",
			body:           `{"quantity":"many"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "remove item",
			method: http.MethodDelete,
			path:   "/api/cart/items/burger-1",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("RemoveItem", mock.Anything, testSession, "burger-1").Return(model.NewCart(nil), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get quantity",
			method: http.MethodGet,
			path:   "/api/cart/items/burger-1/quantity",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Quantity", mock.Anything, testSession, "burger-1").Return(2, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, dto.QuantityResponse{ID: "burger-1", Quantity: 2}, decodeData[dto.QuantityResponse](t, w))
			},
		},
		{
			name:   "clear cart",
			method: http.MethodDelete,
			path:   "/api/cart",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Clear", mock.Anything, testSession).Return(model.NewCart(nil), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "logout",
			method: http.MethodPost,
			path:   "/api/session/logout",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Logout", mock.Anything, testSession).Return(nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotEmpty(t, decodeData[dto.MessageResponse](t, w).Message)
			},
		},
		{
			name:   "unexpected error is 500",
			method: http.MethodGet,
			path:   "/api/cart",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Get", mock.Anything, testSession).Return(model.Cart{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, dto.ErrCodeInternal, decodeError(t, w).Error)
			},
		},
		{
			name:   "session error is 400",
			method: http.MethodGet,
			path:   "/api/cart",
			setupMocks: func(m *mocks.MockCartService) {
				m.On("Get", mock.Anything, testSession).Return(model.Cart{}, service.ErrSessionRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mocks.MockCartService)
			if tt.setupMocks != nil {
				tt.setupMocks(carts)
			}
			router := newMockRouter(carts, new(mocks.MockCheckoutService))

			w := doRequest(router, tt.method, tt.path, tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.check != nil {
				tt.check(t, w)
			}
			carts.AssertExpectations(t)
		})
	}
}

func TestCartHandler_TranslatesErrors(t *testing.T) {
	router := newMockRouter(new(mocks.MockCartService), new(mocks.MockCheckoutService))

	w := doRequest(router, http.MethodPost, "/api/cart/items", `{}`, map[string]string{"Accept-Language": "bn"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "অনুরোধের বডি অবৈধ", decodeError(t, w).Message)
}
