package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

func (c *Client) PlaceOrder(ctx context.Context, addressID string) error {
	payload := map[string]string{"address_id": addressID}
	return c.doJSON(ctx, http.MethodPost, "/user/orders", payload, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/user/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderDetails returns the line items of one order.
func (c *Client) OrderDetails(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	if err := c.doJSON(ctx, http.MethodGet, "/user/orders/"+orderID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	return c.doJSON(ctx, http.MethodPatch, "/user/orders/"+orderID+"/cancel", nil, nil)
}
