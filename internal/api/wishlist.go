package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

func (c *Client) GetWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	if err := c.doJSON(ctx, http.MethodGet, "/user/wishlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddToWishlist(ctx context.Context, inventoryID string) error {
	payload := map[string]string{"inventory_id": inventoryID}
	return c.doJSON(ctx, http.MethodPost, "/user/wishlist", payload, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, inventoryID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/wishlist/"+inventoryID, nil, nil)
}
