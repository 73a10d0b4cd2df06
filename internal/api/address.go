package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var out []domain.Address
	if err := c.doJSON(ctx, http.MethodGet, "/user/address", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddAddress creates an address and returns the server's echo of it,
// including the assigned id.
func (c *Client) AddAddress(ctx context.Context, addr domain.Address) (domain.Address, error) {
	var out domain.Address
	if err := c.doJSON(ctx, http.MethodPost, "/user/address", addr, &out); err != nil {
		return domain.Address{}, err
	}
	return out, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id string, addr domain.Address) error {
	return c.doJSON(ctx, http.MethodPut, "/user/address/"+id, addr, nil)
}

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/address/"+id, nil, nil)
}
