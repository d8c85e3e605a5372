// Package memory implements the dashboard's repositories over ordered
// in-memory collections. Nothing survives a restart.
package memory

import "sync"

// Collection is an ordered, concurrency-safe set of records keyed by ID.
// Records go in and come out as copies, so callers never share state with
// the collection.
type Collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	idOf  func(*T) string
	clone func(T) T
}

// NewCollection creates an empty collection. clone may be nil for record
// types that hold no reference fields.
func NewCollection[T any](idOf func(*T) string, clone func(T) T) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Collection[T]{
		items: make(map[string]T),
		idOf:  idOf,
		clone: clone,
	}
}

// All returns every record in insertion order. The result is never nil.
func (c *Collection[T]) All() []T {
	return c.Filter(nil)
}

// Filter returns the records matching keep in insertion order. A nil keep
// matches everything.
func (c *Collection[T]) Filter(keep func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if keep != nil && !keep(&v) {
			continue
		}
		out = append(out, c.clone(v))
	}
	return out
}

// Get returns the record with the given ID
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(v), true
}

// Find returns the first record, in insertion order, matching match
func (c *Collection[T]) Find(match func(*T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		v := c.items[id]
		if match(&v) {
			return c.clone(v), true
		}
	}
	var zero T
	return zero, false
}

// Insert appends v. An existing record with the same ID is replaced in place.
func (c *Collection[T]) Insert(v T) T {
	stored := c.clone(v)
	id := c.idOf(&stored)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = stored
	return c.clone(stored)
}

// Update runs mutate on a copy of the record under the write lock and
// stores the copy if mutate succeeds. It returns false when id is absent.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	current, ok := c.items[id]
	if !ok {
		return zero, false, nil
	}

	next := c.clone(current)
	if err := mutate(&next); err != nil {
		return zero, true, err
	}
	c.items[id] = next
	return c.clone(next), true, nil
}

// Delete removes the record with the given ID
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
