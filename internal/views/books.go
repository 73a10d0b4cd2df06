package views

import (
	"context"

	"bookstorefront/pkg/domain"
)

// BooksView is the catalog page: the book list plus the wishlist membership
// set that decorates it.
type BooksView struct {
	view
	deps Deps

	books    []domain.Book
	wishlist map[string]bool // inventory ids
	added    map[string]bool // inventory ids added to cart this visit
}

func NewBooksView(deps Deps) *BooksView {
	return &BooksView{
		deps:     deps,
		wishlist: make(map[string]bool),
		added:    make(map[string]bool),
	}
}

// Load fetches the catalog and the wishlist membership set.
func (b *BooksView) Load(ctx context.Context) {
	books, err := b.deps.API.ListBooks(ctx)
	if err != nil {
		b.deps.failLoad(err)
		return
	}
	wishlist, err := b.deps.API.GetWishlist(ctx)
	if err != nil {
		b.deps.failLoad(err)
		return
	}
	b.patch(func() {
		b.books = books
		b.wishlist = make(map[string]bool, len(wishlist))
		for _, item := range wishlist {
			b.wishlist[item.InventoryID] = true
		}
	})
}

// Search replaces the list with matches; an empty query restores the full
// catalog.
func (b *BooksView) Search(ctx context.Context, query string) {
	var (
		books []domain.Book
		err   error
	)
	if query == "" {
		books, err = b.deps.API.ListBooks(ctx)
	} else {
		books, err = b.deps.API.SearchBooks(ctx, query)
	}
	if err != nil {
		b.deps.Notify.Error(mutationMessage(err, "Search failed"))
		return
	}
	b.patch(func() { b.books = books })
}

// AddToCart puts one unit in the cart and refreshes the badge.
func (b *BooksView) AddToCart(ctx context.Context, inventoryID string) {
	if err := b.deps.API.AddToCart(ctx, inventoryID, 1); err != nil {
		b.deps.Notify.Error(mutationMessage(err, "Unable to add to cart"))
		return
	}
	b.patch(func() { b.added[inventoryID] = true })
	b.deps.Notify.Success("Added to cart")
	b.deps.Session.RefreshCartCount(ctx)
}

// ToggleWishlist adds or removes the inventory reference, updating the local
// set only after the server confirms.
func (b *BooksView) ToggleWishlist(ctx context.Context, inventoryID string) {
	if b.inWishlist(inventoryID) {
		if err := b.deps.API.RemoveFromWishlist(ctx, inventoryID); err != nil {
			b.deps.Notify.Error(mutationMessage(err, "Wishlist update failed"))
			return
		}
		b.patch(func() { delete(b.wishlist, inventoryID) })
		b.deps.Notify.Info("Removed from wishlist")
		return
	}

	if err := b.deps.API.AddToWishlist(ctx, inventoryID); err != nil {
		b.deps.Notify.Error(mutationMessage(err, "Wishlist update failed"))
		return
	}
	b.patch(func() { b.wishlist[inventoryID] = true })
	b.deps.Notify.Success("Added to wishlist")
}

func (b *BooksView) Books() []domain.Book {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.books
}

func (b *BooksView) InWishlist(inventoryID string) bool {
	return b.inWishlist(inventoryID)
}

func (b *BooksView) AddedToCart(inventoryID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.added[inventoryID]
}

func (b *BooksView) inWishlist(inventoryID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wishlist[inventoryID]
}
