package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates a malformed request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInvalidItem indicates a line item failed domain validation.
	ErrCodeInvalidItem = "invalid_item"
	// ErrCodeEmptyCart indicates checkout of an empty cart.
	ErrCodeEmptyCart = "empty_cart"
	// ErrCodeOrderFailed indicates the order API rejected or failed the order.
	ErrCodeOrderFailed = "order_failed"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a route or resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_item"`
	Message   string            `json:"message,omitempty" example:"The item cannot be added to the cart"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds one field-level detail.
func (e ErrorResponse) WithDetail(field, message string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[field] = message
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusBadGateway:
		return ErrCodeOrderFailed
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// CartResponse is the cart as returned by every cart endpoint.
// @Description Cart snapshot with derived totals
type CartResponse struct {
	Items      []model.LineItem `json:"items"`
	TotalItems int              `json:"totalItems" example:"4"`
	TotalPrice float64          `json:"totalPrice" example:"305"`
} // @name CartResponse

// NewCartResponse converts a cart snapshot. Items always serialize as an array.
func NewCartResponse(c model.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []model.LineItem{}
	}
	return CartResponse{Items: items, TotalItems: c.TotalItems, TotalPrice: c.TotalPrice}
}

// QuantityResponse reports the quantity of one line.
type QuantityResponse struct {
	ID       string `json:"id" example:"pkg-12-lunch-sun"`
	Quantity int    `json:"quantity" example:"2"`
} // @name QuantityResponse

// CheckoutResponse describes the order created from the cart.
// @Description Order created by checkout
type CheckoutResponse struct {
	OrderID     string  `json:"orderId" example:"ord_8f14e45f"`
	Status      string  `json:"status" example:"pending"`
	Subtotal    float64 `json:"subtotal" example:"305"`
	DeliveryFee float64 `json:"deliveryFee" example:"60"`
	Total       float64 `json:"total" example:"365"`
	TotalItems  int     `json:"totalItems" example:"4"`
} // @name CheckoutResponse

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Signed out, cart cleared"`
} // @name MessageResponse
