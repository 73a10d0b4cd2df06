package views

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"bookstorefront/internal/api"
	"bookstorefront/internal/prefs"
	"bookstorefront/internal/session"
	"bookstorefront/internal/storage"
	"bookstorefront/pkg/domain"
)

// recordNotifier captures user-facing messages by severity.
type recordNotifier struct {
	mu        sync.Mutex
	successes []string
	infos     []string
	warnings  []string
	errors    []string
}

func (n *recordNotifier) Success(msg string) { n.record(&n.successes, msg) }
func (n *recordNotifier) Info(msg string)    { n.record(&n.infos, msg) }
func (n *recordNotifier) Warning(msg string) { n.record(&n.warnings, msg) }
func (n *recordNotifier) Error(msg string)   { n.record(&n.errors, msg) }

func (n *recordNotifier) record(dst *[]string, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	*dst = append(*dst, msg)
}

func (n *recordNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

// recordNav captures navigations.
type recordNav struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordNav) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordNav) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

// fakeBackend serves the storefront endpoint surface from in-memory fixtures,
// counting calls and optionally failing specific routes.
type fakeBackend struct {
	mu         sync.Mutex
	books      []domain.Book
	wishlist   []domain.WishlistItem
	cart       []domain.CartItem
	addresses  []domain.Address
	orders     []domain.Order
	orderItems map[string][]domain.OrderItem
	profile    domain.Profile
	reviews    map[string][]domain.Review

	calls   map[string]int    // "METHOD /path" -> count
	failing map[string]string // "METHOD /path" -> domain error message
	reject  bool              // respond 401 to everything
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		orderItems: make(map[string][]domain.OrderItem),
		reviews:    make(map[string][]domain.Review),
		calls:      make(map[string]int),
		failing:    make(map[string]string),
	}
}

func (f *fakeBackend) failWith(route, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[route] = message
}

func (f *fakeBackend) callCount(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

func (f *fakeBackend) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func writeSuccess(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": data})
}

func writeDomainError(w http.ResponseWriter, msg string) {
	json.NewEncoder(w).Encode(map[string]any{"status": "error", "error": msg})
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")

	f.mu.Lock()
	f.calls[route]++
	msg, failing := f.failing[route]
	reject := f.reject
	f.mu.Unlock()

	if reject {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if failing {
		writeDomainError(w, msg)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	path := strings.TrimPrefix(r.URL.Path, "/api")
	switch {
	case route == "GET /user/books":
		writeSuccess(w, f.books)
	case route == "GET /user/wishlist":
		writeSuccess(w, f.wishlist)
	case route == "POST /user/wishlist":
		writeSuccess(w, nil)
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/user/wishlist/"):
		writeSuccess(w, nil)
	case route == "GET /user/cart":
		writeSuccess(w, f.cart)
	case route == "POST /user/cart":
		writeSuccess(w, nil)
	case r.Method == http.MethodPut && strings.HasPrefix(path, "/user/cart/"):
		writeSuccess(w, nil)
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/user/cart/"):
		id := strings.TrimPrefix(path, "/user/cart/")
		kept := f.cart[:0]
		for _, item := range f.cart {
			if item.CartItemID != id {
				kept = append(kept, item)
			}
		}
		f.cart = kept
		writeSuccess(w, nil)
	case route == "GET /user/address":
		writeSuccess(w, f.addresses)
	case route == "POST /user/address":
		var addr domain.Address
		json.NewDecoder(r.Body).Decode(&addr)
		addr.AddressID = "addr-new"
		writeSuccess(w, addr)
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/user/address/"):
		writeSuccess(w, nil)
	case route == "GET /user/orders":
		writeSuccess(w, f.orders)
	case route == "POST /user/orders":
		writeSuccess(w, nil)
	case r.Method == http.MethodPatch && strings.HasSuffix(path, "/cancel"):
		writeSuccess(w, nil)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/user/orders/"):
		id := strings.TrimPrefix(path, "/user/orders/")
		writeSuccess(w, f.orderItems[id])
	case route == "POST /user/reviews":
		var review domain.Review
		json.NewDecoder(r.Body).Decode(&review)
		review.ReviewID = "rev-new"
		f.reviews[review.BookID] = append(f.reviews[review.BookID], review)
		writeSuccess(w, review)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/user/reviews/"):
		writeSuccess(w, f.reviews[strings.TrimPrefix(path, "/user/reviews/")])
	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/user/reviews/"):
		writeSuccess(w, nil)
	case route == "GET /user/profile":
		writeSuccess(w, f.profile)
	case route == "PUT /user/profile":
		writeSuccess(w, nil)
	case route == "PUT /user/profile/password":
		writeSuccess(w, nil)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// harness wires a view Deps against the fake backend with an authenticated
// session.
type harness struct {
	backend *fakeBackend
	deps    Deps
	notify  *recordNotifier
	nav     *recordNav
	kv      storage.KV
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	kv := storage.NewMemoryKV()
	kv.Set(storage.KeyToken, "session-token")
	client := api.NewClient(srv.URL, api.NewStorageTokenSource(kv))

	notify := &recordNotifier{}
	nav := &recordNav{}
	return &harness{
		backend: backend,
		notify:  notify,
		nav:     nav,
		kv:      kv,
		deps: Deps{
			API:     client,
			Session: session.New(client, kv),
			Prefs:   prefs.New(kv),
			Notify:  notify,
			Nav:     nav,
		},
	}
}

func (h *harness) hasToken() bool {
	_, ok, _ := h.kv.Get(storage.KeyToken)
	return ok
}

func ctx() context.Context { return context.Background() }
