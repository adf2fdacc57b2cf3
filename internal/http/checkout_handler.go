package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/orderapi"
	"github.com/guttosm/cart-service/internal/service"
)

// CheckoutHandler turns the session's cart into an order.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /api/checkout.
//
// @Summary      Checkout
// @Description  Submits the cart to the order API with the delivery fee of the shipping area. The cart is cleared only when the order is created; on failure it is kept. Retries with the same Idempotency-Key replay the first result.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Deduplicates retried checkouts"
// @Param        Authorization header string false "Bearer token (required when auth is enabled)"
// @Param        request body dto.CheckoutRequest true "Delivery and payment details"
// @Success      201 {object} dto.SuccessResponse{data=dto.CheckoutResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or empty cart"
// @Failure      401 {object} dto.ErrorResponse
// @Failure      502 {object} dto.ErrorResponse "Order API failed; cart kept"
// @Security     BearerAuth
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), middleware.GetSessionID(c), service.CheckoutRequest{
		Shipping: orderapi.Shipping{
			Area:    req.Shipping.Area,
			Address: req.Shipping.Address,
			City:    req.Shipping.City,
			Note:    req.Shipping.Note,
		},
		Contact: orderapi.Contact{
			Name:  req.Contact.Name,
			Phone: req.Contact.Phone,
			Email: req.Contact.Email,
		},
		PaymentMethod:  req.PaymentMethod,
		BearerToken:    middleware.GetBearerToken(c),
		IdempotencyKey: c.GetHeader(middleware.IdempotencyKeyHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeEmptyCart, i18n.ErrKeyEmptyCart, nil, err)
		case errors.Is(err, service.ErrOrderSubmission):
			builder.ErrorWithCode(http.StatusBadGateway, dto.ErrCodeOrderFailed, i18n.ErrKeyOrderFailed, nil, err)
		case errors.Is(err, service.ErrSessionRequired):
			builder.Error(http.StatusBadRequest, i18n.ErrKeySessionRequired, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(dto.CheckoutResponse{
		OrderID:     result.OrderID,
		Status:      result.Status,
		Subtotal:    result.Subtotal,
		DeliveryFee: result.DeliveryFee,
		Total:       result.Total,
		TotalItems:  result.TotalItems,
	})
}
