// Package cart holds the session cart: a pure reducer over line items and a
// Store that composes the reducer with a durable snapshot.
package cart

import (
	"github.com/guttosm/cart-service/internal/domain/model"
)

// Action is a cart mutation understood by Reduce.
type Action interface {
	// Name identifies the action in logs, metrics and activity entries.
	Name() model.ActivityAction
}

// AddAction merges Item into the cart.
type AddAction struct {
	Item model.LineItem
}

// RemoveAction drops the line with ID.
type RemoveAction struct {
	ID string
}

// SetQuantityAction replaces the quantity of the line with ID.
// A Quantity of zero or below removes the line.
type SetQuantityAction struct {
	ID       string
	Quantity int
}

// ClearAction empties the cart.
type ClearAction struct{}

// SubtractAction takes the quantities of Items out of the cart, matching
// lines by id. Lines that reach zero are dropped; ids not in the cart are
// ignored. Checkout uses it to remove exactly what was ordered.
type SubtractAction struct {
	Items []model.LineItem
}

func (AddAction) Name() model.ActivityAction         { return model.ActivityAdd }
func (RemoveAction) Name() model.ActivityAction      { return model.ActivityRemove }
func (SetQuantityAction) Name() model.ActivityAction { return model.ActivitySetQuantity }
func (ClearAction) Name() model.ActivityAction       { return model.ActivityClear }
func (SubtractAction) Name() model.ActivityAction    { return model.ActivityCheckout }

// Reduce applies a to items and returns the resulting items.
// The input slice is never modified and insertion order is preserved.
// Reduce performs no validation; callers validate AddAction items first.
// Quantities saturate at model.MaxQuantity so no sequence of actions can
// overflow a line.
func Reduce(items []model.LineItem, a Action) []model.LineItem {
	switch act := a.(type) {
	case AddAction:
		return add(items, act.Item)
	case RemoveAction:
		return remove(items, act.ID)
	case SetQuantityAction:
		if act.Quantity <= 0 {
			return remove(items, act.ID)
		}
		return setQuantity(items, act.ID, act.Quantity)
	case ClearAction:
		return []model.LineItem{}
	case SubtractAction:
		return subtract(items, act.Items)
	default:
		return model.CloneItems(items)
	}
}

func add(items []model.LineItem, item model.LineItem) []model.LineItem {
	out := model.CloneItems(items)
	if i := indexOf(out, item.ID); i >= 0 {
		out[i].Quantity = saturatingAdd(out[i].Quantity, item.Quantity)
		return out
	}
	return append(out, item.Clone())
}

func remove(items []model.LineItem, id string) []model.LineItem {
	out := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it.Clone())
		}
	}
	return out
}

func setQuantity(items []model.LineItem, id string, quantity int) []model.LineItem {
	out := model.CloneItems(items)
	if i := indexOf(out, id); i >= 0 {
		out[i].Quantity = min(quantity, model.MaxQuantity)
	}
	return out
}

func subtract(items, ordered []model.LineItem) []model.LineItem {
	taken := make(map[string]int, len(ordered))
	for _, it := range ordered {
		if it.Quantity > 0 {
			taken[it.ID] = saturatingAdd(taken[it.ID], it.Quantity)
		}
	}
	out := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		left := it.Quantity - taken[it.ID]
		if left <= 0 {
			continue
		}
		line := it.Clone()
		line.Quantity = left
		out = append(out, line)
	}
	return out
}

// saturatingAdd sums two non-negative quantities, capped at model.MaxQuantity.
func saturatingAdd(a, b int) int {
	if b > model.MaxQuantity-a {
		return model.MaxQuantity
	}
	return a + b
}

func indexOf(items []model.LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
