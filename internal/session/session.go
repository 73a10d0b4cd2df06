// Package session owns the client's authentication state and the derived
// cart badge count. It is the only writer of the persisted credential; the
// API client reads it back on every request.
package session

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"bookstorefront/internal/api"
	"bookstorefront/internal/storage"
)

// Store holds page-lifetime authentication state. Construct one per
// application; the route guard reads its flag on every navigation.
type Store struct {
	api *api.Client
	kv  storage.KV

	mu            sync.RWMutex
	authenticated bool
	cartCount     int
	bootstrapped  bool

	group singleflight.Group
}

func New(client *api.Client, kv storage.KV) *Store {
	return &Store{api: client, kv: kv}
}

// Bootstrap validates any stored credential against the profile endpoint.
// With no stored credential it resolves unauthenticated without touching the
// network. A rejected credential (domain, transport, or unauthorized — all
// treated alike) is removed from storage. Runs at most once.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return
	}
	s.bootstrapped = true
	s.mu.Unlock()

	token, ok, err := s.kv.Get(storage.KeyToken)
	if err != nil {
		slog.Warn("credential read failed", "err", err)
	}
	if !ok || token == "" {
		s.setAuthenticated(false)
		return
	}

	if _, err := s.api.GetProfile(ctx); err != nil {
		slog.Info("stored credential rejected", "err", err)
		if err := s.kv.Delete(storage.KeyToken); err != nil {
			slog.Warn("credential delete failed", "err", err)
		}
		s.setAuthenticated(false)
		return
	}

	s.setAuthenticated(true)
	s.RefreshCartCount(ctx)
}

// RefreshCartCount fetches the cart and sets the badge to the item count, or
// to 0 on any failure so a stale positive count never survives an error.
// Concurrent calls collapse into a single fetch.
func (s *Store) RefreshCartCount(ctx context.Context) int {
	v, _, _ := s.group.Do("cart-count", func() (any, error) {
		items, err := s.api.GetCart(ctx)
		if err != nil {
			return 0, nil
		}
		return len(items), nil
	})
	count := v.(int)

	s.mu.Lock()
	s.cartCount = count
	s.mu.Unlock()
	return count
}

// Login exchanges credentials for a token, persists it, and marks the
// session authenticated. The badge is refreshed immediately after.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.kv.Set(storage.KeyToken, token); err != nil {
		return err
	}
	s.setAuthenticated(true)
	s.RefreshCartCount(ctx)
	return nil
}

// Logout tears the session down: credential removed, flag and badge reset.
func (s *Store) Logout() {
	if err := s.kv.Delete(storage.KeyToken); err != nil {
		slog.Warn("credential delete failed", "err", err)
	}
	s.mu.Lock()
	s.authenticated = false
	s.cartCount = 0
	s.mu.Unlock()
}

// Expire is Logout under another name, used by view modules when a load
// fails and the session is assumed dead.
func (s *Store) Expire() {
	s.Logout()
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartCount
}

func (s *Store) setAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	if !v {
		s.cartCount = 0
	}
	s.mu.Unlock()
}
