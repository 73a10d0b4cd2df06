// Package prefs holds the two locally-cached address references. They point
// into the server's address collection but are never sent to the server;
// they only decorate how address lists are presented.
package prefs

import (
	"log/slog"

	"bookstorefront/internal/storage"
)

// Cache reads and writes the default and last-used address references.
type Cache struct {
	kv storage.KV
}

func New(kv storage.KV) *Cache {
	return &Cache{kv: kv}
}

func (c *Cache) DefaultAddressID() (string, bool) {
	return c.get(storage.KeyDefaultAddr)
}

func (c *Cache) SetDefault(id string) {
	c.set(storage.KeyDefaultAddr, id)
}

func (c *Cache) ClearDefault() {
	c.delete(storage.KeyDefaultAddr)
}

func (c *Cache) LastUsedAddressID() (string, bool) {
	return c.get(storage.KeyLastUsedAddr)
}

func (c *Cache) RecordLastUsed(id string) {
	c.set(storage.KeyLastUsedAddr, id)
}

// ClearAddress removes any reference equal to id. Called in the same
// operation as an address deletion so a dangling reference is never shown.
func (c *Cache) ClearAddress(id string) {
	if v, ok := c.DefaultAddressID(); ok && v == id {
		c.ClearDefault()
	}
	if v, ok := c.LastUsedAddressID(); ok && v == id {
		c.delete(storage.KeyLastUsedAddr)
	}
}

func (c *Cache) get(key string) (string, bool) {
	v, ok, err := c.kv.Get(key)
	if err != nil {
		slog.Warn("preference read failed", "key", key, "err", err)
		return "", false
	}
	return v, ok && v != ""
}

func (c *Cache) set(key, value string) {
	if err := c.kv.Set(key, value); err != nil {
		slog.Warn("preference write failed", "key", key, "err", err)
	}
}

func (c *Cache) delete(key string) {
	if err := c.kv.Delete(key); err != nil {
		slog.Warn("preference delete failed", "key", key, "err", err)
	}
}
