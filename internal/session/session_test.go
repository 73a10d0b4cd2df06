package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"bookstorefront/internal/api"
	"bookstorefront/internal/storage"
)

var signingKey = []byte("test-secret")

func mintToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validToken(r *http.Request) bool {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" || raw == r.Header.Get("Authorization") {
		return false
	}
	_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return signingKey, nil },
		jwt.WithValidMethods([]string{"HS256"}))
	return err == nil
}

// fakeBackend serves the profile and cart endpoints the session layer uses,
// counting every request.
type fakeBackend struct {
	requests  atomic.Int64
	cartCalls atomic.Int64
	cartItems int
	cartFails bool
	cartGate  chan struct{} // when set, cart handler blocks until closed
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		if !validToken(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/user/profile":
			json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]string{"name": "u", "email": "u@x", "phone": "1234567890"}})
		case "/api/user/cart":
			f.cartCalls.Add(1)
			if f.cartGate != nil {
				<-f.cartGate
			}
			if f.cartFails {
				json.NewEncoder(w).Encode(map[string]any{"status": "error", "error": "cart unavailable"})
				return
			}
			items := make([]map[string]any, f.cartItems)
			for i := range items {
				items[i] = map[string]any{"cart_item_id": "ci", "inventory_id": "inv", "title": "b", "price_at_addition": 10.0, "quantity": 1}
			}
			json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": items})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newStore(t *testing.T, backend *fakeBackend) (*Store, storage.KV) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	kv := storage.NewMemoryKV()
	client := api.NewClient(srv.URL, api.NewStorageTokenSource(kv))
	return New(client, kv), kv
}

func TestBootstrapWithoutTokenSkipsNetwork(t *testing.T) {
	backend := &fakeBackend{}
	store, _ := newStore(t, backend)

	store.Bootstrap(context.Background())

	if store.Authenticated() {
		t.Fatalf("expected unauthenticated session")
	}
	if n := backend.requests.Load(); n != 0 {
		t.Fatalf("expected no network calls, got %d", n)
	}
}

func TestBootstrapWithValidToken(t *testing.T) {
	backend := &fakeBackend{cartItems: 3}
	store, kv := newStore(t, backend)
	kv.Set(storage.KeyToken, mintToken(t, "user-1"))

	store.Bootstrap(context.Background())

	if !store.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if store.CartCount() != 3 {
		t.Fatalf("expected badge count 3, got %d", store.CartCount())
	}
}

func TestBootstrapWithRejectedTokenClearsCredential(t *testing.T) {
	backend := &fakeBackend{}
	store, kv := newStore(t, backend)
	kv.Set(storage.KeyToken, "not-a-jwt")

	store.Bootstrap(context.Background())

	if store.Authenticated() {
		t.Fatalf("expected unauthenticated session")
	}
	if _, ok, _ := kv.Get(storage.KeyToken); ok {
		t.Fatalf("expected rejected credential removed from storage")
	}
}

func TestBootstrapRunsOnce(t *testing.T) {
	backend := &fakeBackend{cartItems: 1}
	store, kv := newStore(t, backend)
	kv.Set(storage.KeyToken, mintToken(t, "user-1"))

	store.Bootstrap(context.Background())
	first := backend.requests.Load()
	store.Bootstrap(context.Background())

	if backend.requests.Load() != first {
		t.Fatalf("expected second bootstrap to be a no-op")
	}
}

func TestRefreshCartCountFailureResetsToZero(t *testing.T) {
	backend := &fakeBackend{cartItems: 4}
	store, kv := newStore(t, backend)
	kv.Set(storage.KeyToken, mintToken(t, "user-1"))

	if got := store.RefreshCartCount(context.Background()); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}

	backend.cartFails = true
	if got := store.RefreshCartCount(context.Background()); got != 0 {
		t.Fatalf("expected 0 after failure, got %d", got)
	}
	if store.CartCount() != 0 {
		t.Fatalf("expected badge reset, got %d", store.CartCount())
	}
}

func TestRefreshCartCountCoalescesConcurrentCalls(t *testing.T) {
	backend := &fakeBackend{cartItems: 2, cartGate: make(chan struct{})}
	store, kv := newStore(t, backend)
	kv.Set(storage.KeyToken, mintToken(t, "user-1"))

	const callers = 5
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.RefreshCartCount(context.Background())
		}(i)
	}
	// Let every caller join the in-flight fetch, then release it.
	time.Sleep(100 * time.Millisecond)
	close(backend.cartGate)
	wg.Wait()

	if n := backend.cartCalls.Load(); n != 1 {
		t.Fatalf("expected 1 cart fetch, got %d", n)
	}
	for i, got := range results {
		if got != 2 {
			t.Fatalf("caller %d got %d, want 2", i, got)
		}
	}
}

func TestLoginPersistsTokenAndRefreshesBadge(t *testing.T) {
	backend := &fakeBackend{cartItems: 2}
	signin := mintToken(t, "user-1")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/user/auth/signin" {
			json.NewEncoder(w).Encode(map[string]any{"status": "success", "token": signin})
			return
		}
		backend.handler()(w, r)
	}))
	t.Cleanup(srv.Close)

	kv := storage.NewMemoryKV()
	client := api.NewClient(srv.URL, api.NewStorageTokenSource(kv))
	store := New(client, kv)

	if err := store.Login(context.Background(), "u@x", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !store.Authenticated() || store.CartCount() != 2 {
		t.Fatalf("expected authenticated with badge 2, got %v/%d", store.Authenticated(), store.CartCount())
	}
	if tok, ok, _ := kv.Get(storage.KeyToken); !ok || tok != signin {
		t.Fatalf("expected token persisted")
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "error", "error": "Incorrect email address or password"})
	}))
	t.Cleanup(srv.Close)

	kv := storage.NewMemoryKV()
	store := New(api.NewClient(srv.URL, api.NewStorageTokenSource(kv)), kv)

	err := store.Login(context.Background(), "u@x", "wrong")
	if msg, ok := api.DomainMessage(err); !ok || msg == "" {
		t.Fatalf("expected domain error, got %v", err)
	}
	if store.Authenticated() {
		t.Fatalf("expected unauthenticated after failed login")
	}
	if _, ok, _ := kv.Get(storage.KeyToken); ok {
		t.Fatalf("expected no token persisted")
	}
}

func TestLogoutTearsDown(t *testing.T) {
	backend := &fakeBackend{cartItems: 1}
	store, kv := newStore(t, backend)
	kv.Set(storage.KeyToken, mintToken(t, "user-1"))
	store.Bootstrap(context.Background())

	store.Logout()

	if store.Authenticated() || store.CartCount() != 0 {
		t.Fatalf("expected clean teardown")
	}
	if _, ok, _ := kv.Get(storage.KeyToken); ok {
		t.Fatalf("expected token removed")
	}
}
