package app

import (
	"log/slog"
	"sync"

	"bookstorefront/internal/route"
	"bookstorefront/internal/session"
)

// Router tracks the current path and applies the route guard on every
// navigation, re-reading the session flag each time.
type Router struct {
	session *session.Store

	mu      sync.Mutex
	current string
}

func NewRouter(sess *session.Store) *Router {
	return &Router{session: sess, current: route.PathRoot}
}

// Navigate resolves the requested path through the guard and moves there.
func (r *Router) Navigate(path string) {
	target := route.Resolve(r.session.Authenticated(), path)
	r.mu.Lock()
	r.current = target
	r.mu.Unlock()
	if target != path {
		slog.Debug("navigation redirected", "requested", path, "target", target)
	}
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
