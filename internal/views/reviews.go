package views

import (
	"context"
	"errors"

	"bookstorefront/pkg/domain"
)

// ReviewsView shows and edits the reviews of one book.
type ReviewsView struct {
	view
	deps Deps

	bookID  string
	reviews []domain.Review
}

func NewReviewsView(deps Deps) *ReviewsView {
	return &ReviewsView{deps: deps}
}

func (r *ReviewsView) Load(ctx context.Context, bookID string) {
	reviews, err := r.deps.API.ListReviews(ctx, bookID)
	if err != nil {
		r.deps.failLoad(err)
		return
	}
	r.patch(func() {
		r.bookID = bookID
		r.reviews = reviews
	})
}

// Add posts a review and appends the server's echo of it.
func (r *ReviewsView) Add(ctx context.Context, rating int, comment string) {
	if rating < 1 || rating > 5 {
		r.deps.Notify.Error(errRatingRange.Error())
		return
	}
	r.mu.Lock()
	bookID := r.bookID
	r.mu.Unlock()

	created, err := r.deps.API.AddReview(ctx, domain.Review{
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		r.deps.Notify.Error(mutationMessage(err, "Failed to add review"))
		return
	}
	r.patch(func() { r.reviews = append(r.reviews, created) })
	r.deps.Notify.Success("Review added")
}

// Remove deletes a review after server confirmation.
func (r *ReviewsView) Remove(ctx context.Context, reviewID string) {
	if err := r.deps.API.DeleteReview(ctx, reviewID); err != nil {
		r.deps.Notify.Error(mutationMessage(err, "Failed to remove review"))
		return
	}
	r.patch(func() {
		kept := r.reviews[:0]
		for _, review := range r.reviews {
			if review.ReviewID != reviewID {
				kept = append(kept, review)
			}
		}
		r.reviews = kept
	})
	r.deps.Notify.Info("Review removed")
}

func (r *ReviewsView) Reviews() []domain.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reviews
}

var errRatingRange = errors.New("Rating must be between 1 and 5")
