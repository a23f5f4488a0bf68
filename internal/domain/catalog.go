package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a catalog source carries two entries with
// the same identity key. A duplicate would make resolution ambiguous, so the
// load fails instead of silently keeping either entry.
var ErrDuplicateKey = errors.New("duplicate catalog key")

// Catalog is a uniquely-keyed lookup table. A loader populates it once at
// startup; it is read-only for the rest of the run.
type Catalog[V any] struct {
	items map[string]V
}

func NewCatalog[V any]() *Catalog[V] {
	return &Catalog[V]{items: make(map[string]V)}
}

// Add inserts an entry, rejecting keys that are already present.
func (c *Catalog[V]) Add(key string, v V) error {
	if _, ok := c.items[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	c.items[key] = v
	return nil
}

// Find performs an exact-key lookup.
func (c *Catalog[V]) Find(key string) (V, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c *Catalog[V]) Len() int { return len(c.items) }
