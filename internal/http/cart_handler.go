package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/i18n"
	"github.com/guttosm/cart-service/internal/middleware"
	"github.com/guttosm/cart-service/internal/service"
)

// CartHandler serves the cart of the request's session.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart handles GET /api/cart.
//
// @Summary      Get cart
// @Description  Returns the cart of the session with its derived totals. A new session starts empty.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Anonymous cart session; issued when missing"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	snapshot, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	h.respond(c, snapshot, err)
}

// AddItem handles POST /api/cart/items.
//
// @Summary      Add item
// @Description  Adds a line item. An item whose id is already in the cart has its quantity increased.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Anonymous cart session"
// @Param        request body dto.AddItemRequest true "Line item"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or invalid item"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	req, err := BuildRequest[dto.AddItemRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	snapshot, err := h.carts.AddItem(c.Request.Context(), middleware.GetSessionID(c), req.ToLineItem())
	h.respond(c, snapshot, err)
}

// SetQuantity handles PUT /api/cart/items/:id.
//
// @Summary      Set item quantity
// @Description  Replaces the quantity of a line. Zero or below removes the line; an unknown id is a no-op; above 999 is rejected.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Line item id"
// @Param        request body dto.SetQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	req, err := BuildRequest[dto.SetQuantityRequest](c)
	if err != nil {
		NewResponseBuilder(c).ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidQuantity, nil, err)
		return
	}

	snapshot, err := h.carts.SetQuantity(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"), *req.Quantity)
	h.respond(c, snapshot, err)
}

// RemoveItem handles DELETE /api/cart/items/:id.
//
// @Summary      Remove item
// @Description  Removes a line. Removing an id that is not in the cart leaves it unchanged.
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Line item id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	snapshot, err := h.carts.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	h.respond(c, snapshot, err)
}

// GetQuantity handles GET /api/cart/items/:id/quantity.
//
// @Summary      Get item quantity
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Line item id"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuantityResponse}
// @Router       /api/cart/items/{id}/quantity [get]
func (h *CartHandler) GetQuantity(c *gin.Context) {
	id := c.Param("id")
	qty, err := h.carts.Quantity(c.Request.Context(), middleware.GetSessionID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.QuantityResponse{ID: id, Quantity: qty})
}

// ClearCart handles DELETE /api/cart.
//
// @Summary      Clear cart
// @Description  Empties the cart and deletes its durable snapshot.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	snapshot, err := h.carts.Clear(c.Request.Context(), middleware.GetSessionID(c))
	h.respond(c, snapshot, err)
}

// Logout handles POST /api/session/logout.
//
// @Summary      End session
// @Description  Clears the cart of the session and releases it from memory.
// @Tags         Session
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse}
// @Router       /api/session/logout [post]
func (h *CartHandler) Logout(c *gin.Context) {
	if err := h.carts.Logout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.MessageResponse{Message: i18n.T(c, i18n.SuccessKeyLoggedOut)})
}

func (h *CartHandler) respond(c *gin.Context, snapshot model.Cart, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewCartResponse(snapshot))
}

func (h *CartHandler) fail(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var verr *model.ValidationError
	switch {
	case errors.Is(err, service.ErrSessionRequired):
		builder.Error(http.StatusBadRequest, i18n.ErrKeySessionRequired, err)
	case errors.Is(err, cart.ErrInvalidItem):
		var details map[string]string
		if errors.As(err, &verr) {
			details = map[string]string{verr.Field: verr.Message}
		}
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidItem, i18n.ErrKeyInvalidItem, details, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
