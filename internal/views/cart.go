package views

import (
	"context"

	"bookstorefront/pkg/domain"
)

// CartView holds the cart snapshot. Totals are always computed here from
// the price recorded at addition time, never requested from the server.
type CartView struct {
	view
	deps Deps

	items []domain.CartItem
}

func NewCartView(deps Deps) *CartView {
	return &CartView{deps: deps}
}

func (c *CartView) Load(ctx context.Context) {
	items, err := c.deps.API.GetCart(ctx)
	if err != nil {
		c.deps.failLoad(err)
		return
	}
	c.patch(func() { c.items = items })
}

// UpdateQuantity sets a line's quantity. Quantities below one never reach
// the server. On success only the quantity field is patched, in place.
func (c *CartView) UpdateQuantity(ctx context.Context, cartItemID string, quantity int) {
	if quantity < 1 {
		c.deps.Notify.Warning("Minimum quantity is 1")
		return
	}
	if err := c.deps.API.UpdateCartItem(ctx, cartItemID, quantity); err != nil {
		c.deps.Notify.Error(mutationMessage(err, "Failed to update cart"))
		return
	}
	c.patch(func() {
		for i := range c.items {
			if c.items[i].CartItemID == cartItemID {
				c.items[i].Quantity = quantity
				break
			}
		}
	})
	c.deps.Notify.Success("Cart updated")
	c.deps.Session.RefreshCartCount(ctx)
}

// Remove deletes a line after server confirmation.
func (c *CartView) Remove(ctx context.Context, cartItemID string) {
	if err := c.deps.API.DeleteCartItem(ctx, cartItemID); err != nil {
		c.deps.Notify.Error(mutationMessage(err, "Failed to remove item"))
		return
	}
	c.patch(func() {
		kept := c.items[:0]
		for _, item := range c.items {
			if item.CartItemID != cartItemID {
				kept = append(kept, item)
			}
		}
		c.items = kept
	})
	c.deps.Notify.Info("Item removed from cart")
	c.deps.Session.RefreshCartCount(ctx)
}

func (c *CartView) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Total sums price-at-addition times quantity across all lines.
func (c *CartView) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}
