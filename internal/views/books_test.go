package views

import (
	"testing"

	"bookstorefront/pkg/domain"
)

func seedBooks(h *harness) {
	h.backend.books = []domain.Book{
		{InventoryID: "inv-1", BookID: "b-1", Title: "Dune", Author: "Herbert", Price: 250},
		{InventoryID: "inv-2", BookID: "b-2", Title: "Hyperion", Author: "Simmons", Price: 400},
	}
	h.backend.wishlist = []domain.WishlistItem{
		{InventoryID: "inv-2", Title: "Hyperion", Author: "Simmons", Price: 400},
	}
}

func TestBooksLoadBuildsWishlistSet(t *testing.T) {
	h := newHarness(t)
	seedBooks(h)

	view := NewBooksView(h.deps)
	view.Load(ctx())

	if len(view.Books()) != 2 {
		t.Fatalf("expected 2 books")
	}
	if view.InWishlist("inv-1") {
		t.Fatalf("inv-1 should not be wishlisted")
	}
	if !view.InWishlist("inv-2") {
		t.Fatalf("inv-2 should be wishlisted")
	}
}

func TestBooksAddToCartRefreshesBadge(t *testing.T) {
	h := newHarness(t)
	seedBooks(h)
	h.backend.cart = []domain.CartItem{
		{CartItemID: "ci-1", InventoryID: "inv-1", Title: "Dune", PriceAtAddition: 250, Quantity: 1},
	}

	view := NewBooksView(h.deps)
	view.Load(ctx())
	view.AddToCart(ctx(), "inv-1")

	if !view.AddedToCart("inv-1") {
		t.Fatalf("expected inventory marked added")
	}
	if h.deps.Session.CartCount() != 1 {
		t.Fatalf("expected badge refreshed, got %d", h.deps.Session.CartCount())
	}
}

func TestBooksToggleWishlistAddAndRemove(t *testing.T) {
	h := newHarness(t)
	seedBooks(h)

	view := NewBooksView(h.deps)
	view.Load(ctx())

	view.ToggleWishlist(ctx(), "inv-1")
	if !view.InWishlist("inv-1") {
		t.Fatalf("expected inv-1 added to wishlist")
	}
	if n := h.backend.callCount("POST /user/wishlist"); n != 1 {
		t.Fatalf("expected one add call, got %d", n)
	}

	view.ToggleWishlist(ctx(), "inv-1")
	if view.InWishlist("inv-1") {
		t.Fatalf("expected inv-1 removed from wishlist")
	}
	if n := h.backend.callCount("DELETE /user/wishlist/inv-1"); n != 1 {
		t.Fatalf("expected one remove call, got %d", n)
	}
}

func TestBooksToggleWishlistDomainErrorKeepsSet(t *testing.T) {
	h := newHarness(t)
	seedBooks(h)
	h.backend.failWith("POST /user/wishlist", "already wishlisted")

	view := NewBooksView(h.deps)
	view.Load(ctx())
	view.ToggleWishlist(ctx(), "inv-1")

	if view.InWishlist("inv-1") {
		t.Fatalf("expected set unchanged after domain error")
	}
	if h.notify.lastError() != "already wishlisted" {
		t.Fatalf("expected server message, got %q", h.notify.lastError())
	}
}

func TestWishlistBuyNowNavigatesToCart(t *testing.T) {
	h := newHarness(t)
	seedBooks(h)

	view := NewWishlistView(h.deps)
	view.Load(ctx())
	if len(view.Items()) != 1 {
		t.Fatalf("expected 1 wishlist item")
	}

	view.BuyNow(ctx(), "inv-2")
	if h.nav.last() != "/cart" {
		t.Fatalf("expected navigation to cart, got %q", h.nav.last())
	}
	if n := h.backend.callCount("POST /user/cart"); n != 1 {
		t.Fatalf("expected one add-to-cart call, got %d", n)
	}
}

func TestWishlistRemoveConfirmedBeforeSetUpdate(t *testing.T) {
	h := newHarness(t)
	seedBooks(h)

	view := NewWishlistView(h.deps)
	view.Load(ctx())
	view.Remove(ctx(), "inv-2")

	if len(view.Items()) != 0 {
		t.Fatalf("expected item removed")
	}
}
