// Package route decides which paths a session may visit. The guard is a pure
// function of the authentication flag and the requested path; it keeps no
// state and is re-evaluated on every navigation.
package route

import "strings"

// Well-known paths.
const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathSignup         = "/signup"
	PathForgotPassword = "/forgot-password"
	PathBooks          = "/books"
	PathCart           = "/cart"
	PathOrders         = "/orders"
	PathWishlist       = "/wishlist"
	PathAddresses      = "/addresses"
	PathConfirmOrder   = "/confirm-order"
	PathProfile        = "/profile"
)

// DefaultLanding is where authenticated users end up when the requested path
// is not for them.
const DefaultLanding = PathBooks

var publicOnly = map[string]bool{
	PathLogin:          true,
	PathSignup:         true,
	PathForgotPassword: true,
}

var protected = map[string]bool{
	PathBooks:        true,
	PathCart:         true,
	PathOrders:       true,
	PathWishlist:     true,
	PathAddresses:    true,
	PathConfirmOrder: true,
	PathProfile:      true,
}

// Resolve maps a requested path to the path that should actually render:
//   - "/" goes to the landing page or login depending on the flag
//   - protected paths require authentication, otherwise login
//   - public-only paths bounce authenticated users to the landing page
//   - unknown paths always go to login
//
// Query strings are preserved when the path itself is allowed.
func Resolve(authenticated bool, path string) string {
	base := path
	if i := strings.IndexByte(path, '?'); i >= 0 {
		base = path[:i]
	}

	switch {
	case base == PathRoot:
		if authenticated {
			return DefaultLanding
		}
		return PathLogin
	case protected[base]:
		if authenticated {
			return path
		}
		return PathLogin
	case publicOnly[base]:
		if authenticated {
			return DefaultLanding
		}
		return path
	default:
		return PathLogin
	}
}
