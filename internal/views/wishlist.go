package views

import (
	"context"

	"bookstorefront/internal/route"
	"bookstorefront/pkg/domain"
)

// WishlistView is the saved-items page. Membership is a set keyed by
// inventory reference; every mutation is server-confirmed before the set
// changes.
type WishlistView struct {
	view
	deps Deps

	items []domain.WishlistItem
}

func NewWishlistView(deps Deps) *WishlistView {
	return &WishlistView{deps: deps}
}

func (w *WishlistView) Load(ctx context.Context) {
	items, err := w.deps.API.GetWishlist(ctx)
	if err != nil {
		w.deps.failLoad(err)
		return
	}
	w.patch(func() { w.items = items })
}

// BuyNow moves one unit into the cart and goes there.
func (w *WishlistView) BuyNow(ctx context.Context, inventoryID string) {
	if err := w.deps.API.AddToCart(ctx, inventoryID, 1); err != nil {
		w.deps.Notify.Error(mutationMessage(err, "Unable to add to cart"))
		return
	}
	w.deps.Notify.Success("Added to cart")
	w.deps.Session.RefreshCartCount(ctx)
	w.deps.Nav.Navigate(route.PathCart)
}

// Remove drops an inventory reference after server confirmation.
func (w *WishlistView) Remove(ctx context.Context, inventoryID string) {
	if err := w.deps.API.RemoveFromWishlist(ctx, inventoryID); err != nil {
		w.deps.Notify.Error(mutationMessage(err, "Failed to remove item"))
		return
	}
	w.patch(func() {
		kept := w.items[:0]
		for _, item := range w.items {
			if item.InventoryID != inventoryID {
				kept = append(kept, item)
			}
		}
		w.items = kept
	})
	w.deps.Notify.Info("Removed from wishlist")
}

func (w *WishlistView) Items() []domain.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.items
}
