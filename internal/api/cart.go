package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

func (c *Client) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := c.doJSON(ctx, http.MethodGet, "/user/cart", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddToCart(ctx context.Context, inventoryID string, quantity int) error {
	payload := map[string]any{"inventory_id": inventoryID, "quantity": quantity}
	return c.doJSON(ctx, http.MethodPost, "/user/cart", payload, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, cartItemID string, quantity int) error {
	payload := map[string]int{"quantity": quantity}
	return c.doJSON(ctx, http.MethodPut, "/user/cart/"+cartItemID, payload, nil)
}

func (c *Client) DeleteCartItem(ctx context.Context, cartItemID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/cart/"+cartItemID, nil, nil)
}
