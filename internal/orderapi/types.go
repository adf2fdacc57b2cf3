// Package orderapi is a client for the external order-creation API that
// receives the cart snapshot at checkout.
package orderapi

import (
	"fmt"
	"time"
)

// OrderItem is one cart line as submitted to the order API.
type OrderItem struct {
	MealID    string  `json:"mealId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
	MealType  string  `json:"mealType,omitempty"`
	MenuType  string  `json:"menuType,omitempty"`
}

// Shipping is the delivery destination.
type Shipping struct {
	Area    string `json:"area"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Contact identifies who receives the order.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// OrderRequest is the order-creation payload. Amounts are in BDT.
type OrderRequest struct {
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	DeliveryFee   float64     `json:"deliveryFee"`
	Total         float64     `json:"total"`
	Shipping      Shipping    `json:"shipping"`
	Contact       Contact     `json:"contact"`
	PaymentMethod string      `json:"paymentMethod"`
}

// OrderResponse is the order API's acknowledgement.
type OrderResponse struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("order api: status %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
