package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/logger"
	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/guttosm/cart-service/internal/orderapi"
)

var (
	// ErrEmptyCart is returned when checking out a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderSubmission wraps any failure of the order API. The cart is left intact.
	ErrOrderSubmission = errors.New("order submission failed")
)

// OrderClient submits orders to the external order API.
type OrderClient interface {
	CreateOrder(ctx context.Context, req *orderapi.OrderRequest, opts orderapi.CallOptions) (*orderapi.OrderResponse, error)
}

// CheckoutRequest is what the customer supplies at checkout.
type CheckoutRequest struct {
	Shipping       orderapi.Shipping
	Contact        orderapi.Contact
	PaymentMethod  string
	BearerToken    string
	IdempotencyKey string
}

// CheckoutResult describes a submitted order.
type CheckoutResult struct {
	OrderID     string
	Status      string
	Subtotal    float64
	DeliveryFee float64
	Total       float64
	TotalItems  int
}

// DeliveryFees prices delivery per area. Area names match case-insensitively.
type DeliveryFees struct {
	Default float64
	ByArea  map[string]float64
}

// NewDeliveryFees normalizes the area table.
func NewDeliveryFees(defaultFee float64, byArea map[string]float64) DeliveryFees {
	normalized := make(map[string]float64, len(byArea))
	for area, fee := range byArea {
		normalized[strings.ToLower(strings.TrimSpace(area))] = fee
	}
	return DeliveryFees{Default: defaultFee, ByArea: normalized}
}

// For returns the fee for area, falling back to the default.
func (f DeliveryFees) For(area string) float64 {
	if fee, ok := f.ByArea[strings.ToLower(strings.TrimSpace(area))]; ok {
		return fee
	}
	return f.Default
}

// CheckoutService turns a session's cart into an order.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*CheckoutResult, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts    *CartServiceImpl
	orders   OrderClient
	fees     DeliveryFees
	recorder *ActivityRecorder
}

// NewCheckoutService creates a checkout service. recorder may be nil.
func NewCheckoutService(carts *CartServiceImpl, orders OrderClient, fees DeliveryFees, recorder *ActivityRecorder) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		carts:    carts,
		orders:   orders,
		fees:     fees,
		recorder: recorder,
	}
}

// Checkout submits the session's cart. Once the order API confirms the
// order, the submitted lines are taken out of the cart; items added while
// the order was in flight stay. On any failure the cart is left untouched.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*CheckoutResult, error) {
	start := time.Now()

	snapshot, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		metrics.RecordCheckout(time.Since(start), "empty", 0)
		return nil, ErrEmptyCart
	}

	order := s.buildOrder(snapshot, req)
	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	resp, err := s.orders.CreateOrder(ctx, order, orderapi.CallOptions{
		BearerToken:    req.BearerToken,
		IdempotencyKey: key,
		RequestID:      logger.RequestIDFromContext(ctx),
	})
	if err != nil {
		metrics.RecordCheckout(time.Since(start), "failed", 0)
		l := logger.Ctx(ctx)
		l.Warn().Err(err).Str("idempotency_key", key).Float64("total", order.Total).Msg("Order submission failed, cart kept")
		return nil, fmt.Errorf("%w: %w", ErrOrderSubmission, err)
	}

	if _, err := s.carts.RemoveOrdered(ctx, sessionID, snapshot.Items); err != nil {
		return nil, err
	}
	metrics.RecordCheckout(time.Since(start), "success", order.Total)

	entry := &model.ActivityEntry{
		Timestamp:  time.Now().UTC(),
		SessionID:  sessionID,
		Action:     model.ActivityCheckout,
		TotalItems: snapshot.TotalItems,
		TotalPrice: order.Total,
		RequestID:  logger.RequestIDFromContext(ctx),
	}
	entry.WithField("order_id", resp.OrderID).WithField("delivery_fee", order.DeliveryFee)
	s.recorder.Record(entry)

	return &CheckoutResult{
		OrderID:     resp.OrderID,
		Status:      resp.Status,
		Subtotal:    order.Subtotal,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
		TotalItems:  snapshot.TotalItems,
	}, nil
}

func (s *CheckoutServiceImpl) buildOrder(c model.Cart, req CheckoutRequest) *orderapi.OrderRequest {
	items := make([]orderapi.OrderItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = orderapi.OrderItem{
			MealID:    it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Subtotal:  roundMoney(it.Subtotal()),
			MealType:  it.MealType,
			MenuType:  it.MenuType,
		}
	}

	subtotal := roundMoney(c.TotalPrice)
	fee := s.fees.For(req.Shipping.Area)
	return &orderapi.OrderRequest{
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         roundMoney(subtotal + fee),
		Shipping:      req.Shipping,
		Contact:       req.Contact,
		PaymentMethod: req.PaymentMethod,
	}
}

// roundMoney rounds to two decimals for the wire payload only.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
