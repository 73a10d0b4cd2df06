package views

import (
	"context"

	"bookstorefront/pkg/domain"
)

// OrdersView lists past orders with lazily fetched line items.
type OrdersView struct {
	view
	deps Deps

	orders       []domain.Order
	itemsByOrder map[string][]domain.OrderItem
}

func NewOrdersView(deps Deps) *OrdersView {
	return &OrdersView{
		deps:         deps,
		itemsByOrder: make(map[string][]domain.OrderItem),
	}
}

func (o *OrdersView) Load(ctx context.Context) {
	orders, err := o.deps.API.ListOrders(ctx)
	if err != nil {
		o.deps.failLoad(err)
		return
	}
	o.patch(func() {
		o.orders = orders
		o.itemsByOrder = make(map[string][]domain.OrderItem)
	})
}

// ToggleItems expands an order's line items on first call and collapses them
// on the next; expansion fetches lazily.
func (o *OrdersView) ToggleItems(ctx context.Context, orderID string) {
	if _, expanded := o.Items(orderID); expanded {
		o.patch(func() { delete(o.itemsByOrder, orderID) })
		return
	}
	items, err := o.deps.API.OrderDetails(ctx, orderID)
	if err != nil {
		o.deps.Notify.Error(mutationMessage(err, "Failed to load order details"))
		return
	}
	o.patch(func() { o.itemsByOrder[orderID] = items })
}

// CanCancel reports whether the cancel action is offered for an order. Only
// pending orders qualify; the server re-validates regardless.
func (o *OrdersView) CanCancel(orderID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, order := range o.orders {
		if order.OrderID == orderID {
			return order.Status == domain.OrderPending
		}
	}
	return false
}

// Cancel asks the server to cancel a pending order, then patches the
// displayed status in place without refetching the list.
func (o *OrdersView) Cancel(ctx context.Context, orderID string) {
	if !o.CanCancel(orderID) {
		o.deps.Notify.Warning("Only pending orders can be cancelled")
		return
	}
	if err := o.deps.API.CancelOrder(ctx, orderID); err != nil {
		o.deps.Notify.Error(mutationMessage(err, "Failed to cancel order"))
		return
	}
	o.patch(func() {
		for i := range o.orders {
			if o.orders[i].OrderID == orderID {
				o.orders[i].Status = domain.OrderCancelled
				break
			}
		}
	})
	o.deps.Notify.Info("Order cancelled successfully")
}

func (o *OrdersView) Orders() []domain.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.orders
}

// Items returns an order's fetched line items and whether they are expanded.
func (o *OrdersView) Items(orderID string) ([]domain.OrderItem, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	items, ok := o.itemsByOrder[orderID]
	return items, ok
}
