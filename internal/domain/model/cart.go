// Package model defines the core domain entities for the cart service.
package model

import (
	"math"
)

// MaxQuantity is the largest number of units one line may hold.
const MaxQuantity = 999

// Ingredient is a display-only component of a meal line item.
//
// @Description Descriptive ingredient pair shown next to a meal
// @Example {"name": "Rice", "quantity": "200g"}
type Ingredient struct {
	Name     string `json:"name" bson:"name" example:"Rice"`
	Quantity string `json:"quantity" bson:"quantity" example:"200g"`
} // @name Ingredient

// LineItem is one distinct orderable unit in a cart.
//
// Price is a unit price in BDT. MealType and MenuType are display tags and
// play no part in pricing.
//
// @Description One addressable cart entry
type LineItem struct {
	ID          string       `json:"id" bson:"id" example:"pkg-12-lunch-sun"`
	Name        string       `json:"name" bson:"name" example:"Family Pack - Lunch - Sunday"`
	Price       float64      `json:"price" bson:"price" example:"65"`
	Quantity    int          `json:"quantity" bson:"quantity" example:"2"`
	Image       string       `json:"image" bson:"image" example:"https://cdn.example.com/meals/12.jpg"`
	MealType    string       `json:"mealType" bson:"meal_type" example:"lunch"`
	MenuType    string       `json:"menuType" bson:"menu_type" example:"regular"`
	Ingredients []Ingredient `json:"ingredients" bson:"ingredients"`
} // @name LineItem

// Subtotal returns price * quantity for the line.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Validate checks the item can enter a cart.
func (li LineItem) Validate() error {
	if li.ID == "" {
		return ErrItemIDRequired
	}
	if math.IsNaN(li.Price) || math.IsInf(li.Price, 0) {
		return ErrPriceNotFinite
	}
	if li.Price < 0 {
		return ErrPriceNegative
	}
	if li.Quantity < 1 {
		return ErrQuantityNotPositive
	}
	if li.Quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

// Clone returns a deep copy, including the ingredients slice.
func (li LineItem) Clone() LineItem {
	out := li
	if li.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(li.Ingredients))
		copy(out.Ingredients, li.Ingredients)
	}
	return out
}

// Cart is the aggregate owned by one cart session.
//
// @Description Cart snapshot with derived totals
// @Example {"items": [], "totalItems": 0, "totalPrice": 0}
type Cart struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems" example:"4"`
	TotalPrice float64    `json:"totalPrice" example:"305"`
} // @name Cart

// NewCart builds a Cart from items with freshly computed totals.
// Items are copied.
func NewCart(items []LineItem) Cart {
	cp := CloneItems(items)
	totalItems, totalPrice := Totals(cp)
	return Cart{Items: cp, TotalItems: totalItems, TotalPrice: totalPrice}
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals computes the aggregates of items.
func Totals(items []LineItem) (totalItems int, totalPrice float64) {
	for _, it := range items {
		totalItems += it.Quantity
		totalPrice += it.Subtotal()
	}
	return totalItems, totalPrice
}

// CloneItems deep-copies a slice of line items. A nil input yields an empty,
// non-nil slice so snapshots always serialize as [].
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
