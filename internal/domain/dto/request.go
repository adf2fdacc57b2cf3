// Package dto defines the JSON shapes of the HTTP API.
//
// Request DTOs carry gin binding tags for structural checks only; business
// validation of line items stays in the domain model.
package dto

import (
	"github.com/guttosm/cart-service/internal/domain/model"
)

// IngredientRequest is a display-only ingredient pair.
type IngredientRequest struct {
	Name     string `json:"name" example:"Rice"`
	Quantity string `json:"quantity" example:"200g"`
} // @name IngredientRequest

// AddItemRequest adds a line item to the cart. When the id is already in
// the cart the quantities are summed.
//
// @Description Line item to add to the cart
type AddItemRequest struct {
	ID          string              `json:"id" binding:"required" example:"pkg-12-lunch-sun"`
	Name        string              `json:"name" example:"Family Pack - Lunch - Sunday"`
	Price       float64             `json:"price" example:"65"`
	Quantity    int                 `json:"quantity" example:"2"`
	Image       string              `json:"image" example:"https://cdn.example.com/meals/12.jpg"`
	MealType    string              `json:"mealType" example:"lunch"`
	MenuType    string              `json:"menuType" example:"regular"`
	Ingredients []IngredientRequest `json:"ingredients"`
} // @name AddItemRequest

// ToLineItem converts the request into a domain line item.
func (r *AddItemRequest) ToLineItem() model.LineItem {
	var ingredients []model.Ingredient
	if len(r.Ingredients) > 0 {
		ingredients = make([]model.Ingredient, len(r.Ingredients))
		for i, in := range r.Ingredients {
			ingredients[i] = model.Ingredient{Name: in.Name, Quantity: in.Quantity}
		}
	}
	return model.LineItem{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Image:       r.Image,
		MealType:    r.MealType,
		MenuType:    r.MenuType,
		Ingredients: ingredients,
	}
}

// SetQuantityRequest replaces the quantity of a line. Zero or below removes it.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"3"`
} // @name SetQuantityRequest

// ShippingRequest is the delivery address of a checkout.
type ShippingRequest struct {
	Area    string `json:"area" binding:"required" example:"Gulshan"`
	Address string `json:"address" binding:"required" example:"House 12, Road 5"`
	City    string `json:"city" example:"Dhaka"`
	Note    string `json:"note,omitempty" example:"Ring twice"`
} // @name ShippingRequest

// ContactRequest identifies who receives the order.
type ContactRequest struct {
	Name  string `json:"name" binding:"required" example:"Rahim Uddin"`
	Phone string `json:"phone" binding:"required" example:"+8801711000000"`
	Email string `json:"email,omitempty" binding:"omitempty,email" example:"rahim@example.com"`
} // @name ContactRequest

// CheckoutRequest submits the cart as an order.
//
// @Description Delivery and payment details for checkout
type CheckoutRequest struct {
	Shipping      ShippingRequest `json:"shipping" binding:"required"`
	Contact       ContactRequest  `json:"contact" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cod bkash card" example:"cod"`
} // @name CheckoutRequest
