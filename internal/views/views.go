// Package views implements the per-domain view-state modules. Each module
// fetches its slice of server state on Load, issues mutations on user
// actions, and patches its local state only from server-confirmed results.
// Nothing here is a system of record; every field is a possibly-stale copy
// of backend truth.
package views

import (
	"sync"

	"bookstorefront/internal/api"
	"bookstorefront/internal/prefs"
	"bookstorefront/internal/route"
	"bookstorefront/internal/session"
)

// Notifier surfaces user-facing messages as toasts.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Navigator performs route changes. Implementations apply the route guard.
type Navigator interface {
	Navigate(path string)
}

// Deps bundles the collaborators shared by every view module.
type Deps struct {
	API     *api.Client
	Session *session.Store
	Prefs   *prefs.Cache
	Notify  Notifier
	Nav     Navigator
}

// failLoad implements the uniform load-failure contract: whatever the
// failure kind, the session is assumed expired, the credential is cleared,
// and the user lands on the login page.
func (d Deps) failLoad(err error) {
	if msg, ok := api.DomainMessage(err); ok && msg != "" {
		d.Notify.Error(msg)
	} else {
		d.Notify.Error("Session expired. Please login again.")
	}
	d.Session.Expire()
	d.Nav.Navigate(route.PathLogin)
}

// mutationMessage picks the server-supplied message for domain errors and
// the fallback for everything else.
func mutationMessage(err error, fallback string) string {
	if msg, ok := api.DomainMessage(err); ok && msg != "" {
		return msg
	}
	return fallback
}

// view carries the lifecycle every module shares. A response that resolves
// after Close must not patch state the view no longer renders.
type view struct {
	mu     sync.Mutex
	closed bool
}

// Close marks the view unmounted. Late responses are dropped afterwards.
func (v *view) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

// patch runs fn under the state lock unless the view has been closed.
// Returns false if the update was dropped.
func (v *view) patch(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	fn()
	return true
}
