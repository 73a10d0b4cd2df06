// Package storage provides the persistent key/value capability the client
// keeps its credential and address preferences in. Backends are
// interchangeable; view logic never touches a concrete store.
package storage

// Well-known keys.
const (
	KeyToken        = "token"
	KeyDefaultAddr  = "defaultAddressId"
	KeyLastUsedAddr = "lastUsedAddressId"
)

// KV is the storage capability: plain string key/value pairs, no versioning
// or expiry. Get reports whether the key was present.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
