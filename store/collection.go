// Package store provides the in-memory entity collections the API serves
// from, plus the optional write-through persistence a GORM-backed
// deployment builds upon.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Record is any entity held in a Collection.
type Record interface {
	GetID() uuid.UUID
}

// Collection is an append-only, insertion-ordered set of records guarded by
// a mutex. Records are never updated or deleted once added; insertion order
// is meaningful for recent-activity views.
type Collection[T Record] struct {
	mu      sync.RWMutex
	items   []T
	persist func(T) error
}

// Add appends a record. When a persist hook is attached the record is
// written through before the in-memory append; a failed write leaves the
// collection unchanged.
func (c *Collection[T]) Add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.persist != nil {
		if err := c.persist(item); err != nil {
			return err
		}
	}
	c.items = append(c.items, item)
	return nil
}

// List returns a copy of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// SetPersist attaches a write-through hook invoked on every Add.
func (c *Collection[T]) SetPersist(fn func(T) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persist = fn
}

func (c *Collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}
