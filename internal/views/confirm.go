package views

import (
	"context"

	"bookstorefront/internal/route"
	"bookstorefront/pkg/domain"
)

// ConfirmOrderView is the checkout confirmation step: one selected address,
// the cart snapshot, and the client-computed total. It refuses to render for
// a missing address or an empty cart.
type ConfirmOrderView struct {
	view
	deps Deps

	address domain.Address
	items   []domain.CartItem
	total   float64
	ready   bool
}

func NewConfirmOrderView(deps Deps) *ConfirmOrderView {
	return &ConfirmOrderView{deps: deps}
}

// Load resolves the selected address and the cart. An unknown address id
// bounces back to the address list; an empty cart bounces back to the cart
// with a message and no order is created.
func (c *ConfirmOrderView) Load(ctx context.Context, addressID string) {
	if addressID == "" {
		c.deps.Notify.Error("Please select an address")
		c.deps.Nav.Navigate(route.PathAddresses)
		return
	}

	addresses, err := c.deps.API.ListAddresses(ctx)
	if err != nil {
		c.deps.failLoad(err)
		return
	}
	var selected *domain.Address
	for i := range addresses {
		if addresses[i].AddressID == addressID {
			selected = &addresses[i]
			break
		}
	}
	if selected == nil {
		c.deps.Notify.Error("Selected address not found")
		c.deps.Nav.Navigate(route.PathAddresses)
		return
	}

	items, err := c.deps.API.GetCart(ctx)
	if err != nil {
		c.deps.failLoad(err)
		return
	}
	if len(items) == 0 {
		c.deps.Notify.Error("Your cart is empty")
		c.deps.Nav.Navigate(route.PathCart)
		return
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	c.patch(func() {
		c.address = *selected
		c.items = items
		c.total = total
		c.ready = true
	})
}

// PlaceOrder submits the order against the selected address and moves to the
// order list. The emptied cart is reflected in the badge.
func (c *ConfirmOrderView) PlaceOrder(ctx context.Context) {
	c.mu.Lock()
	ready := c.ready
	addressID := c.address.AddressID
	c.mu.Unlock()
	if !ready {
		return
	}

	if err := c.deps.API.PlaceOrder(ctx, addressID); err != nil {
		c.deps.Notify.Error(mutationMessage(err, "Failed to place order"))
		return
	}
	c.deps.Notify.Success("Order placed successfully")
	c.deps.Session.RefreshCartCount(ctx)
	c.deps.Nav.Navigate(route.PathOrders)
}

func (c *ConfirmOrderView) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

func (c *ConfirmOrderView) Address() domain.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.address
}

func (c *ConfirmOrderView) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *ConfirmOrderView) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
