package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

func (c *Client) GetProfile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/user/profile", nil, &p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name, phone string) error {
	payload := map[string]string{"name": name, "phone": phone}
	return c.doJSON(ctx, http.MethodPut, "/user/profile", payload, nil)
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	payload := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.doJSON(ctx, http.MethodPut, "/user/profile/password", payload, nil)
}
