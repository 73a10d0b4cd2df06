package api

import (
	"context"
	"net/http"

	"bookstorefront/pkg/domain"
)

// AddReview creates a review and returns the server's echo of it, including
// the assigned id.
func (c *Client) AddReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	var out domain.Review
	if err := c.doJSON(ctx, http.MethodPost, "/user/reviews", review, &out); err != nil {
		return domain.Review{}, err
	}
	return out, nil
}

func (c *Client) ListReviews(ctx context.Context, bookID string) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.doJSON(ctx, http.MethodGet, "/user/reviews/"+bookID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/reviews/"+reviewID, nil, nil)
}
