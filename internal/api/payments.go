package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

// InitiateCOD starts a cash-on-delivery payment for an order.
func (c *Client) InitiateCOD(ctx context.Context, orderID string) error {
	payload := map[string]string{"order_id": orderID}
	return c.doJSON(ctx, http.MethodPost, "/user/payments/cod", payload, nil)
}

func (c *Client) GetPaymentStatus(ctx context.Context, orderID string) (domain.PaymentStatus, error) {
	var out domain.PaymentStatus
	if err := c.doJSON(ctx, http.MethodGet, "/user/payments/"+orderID+"/status", nil, &out); err != nil {
		return domain.PaymentStatus{}, err
	}
	return out, nil
}
