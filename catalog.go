package shelf

import (
	"sync"

	"github.com/rotisserie/eris"
)

// catalog hands out dense indices for keys in registration order
type catalog[K comparable, T any] struct {
	mu          sync.RWMutex
	items       []T
	itemIndices map[K]int
	maxCapacity int
}

func newCatalog[K comparable, T any](cap int) *catalog[K, T] {
	return &catalog[K, T]{
		itemIndices: make(map[K]int),
		maxCapacity: cap,
	}
}

func (c *catalog[K, T]) index(key K) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *catalog[K, T]) item(index int) T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[index]
}

func (c *catalog[K, T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// getOrRegister returns the item stored under key, building it with create
// the first time the key is seen. create receives the index the item will
// occupy.
func (c *catalog[K, T]) getOrRegister(key K, create func(index int) T) (T, int, error) {
	if index, ok := c.index(key); ok {
		return c.item(index), index, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if index, ok := c.itemIndices[key]; ok {
		return c.items[index], index, nil
	}
	if len(c.items) >= c.maxCapacity {
		var zero T
		return zero, -1, eris.Wrapf(ErrCatalogFull, "capacity %d", c.maxCapacity)
	}

	idx := len(c.items)
	item := create(idx)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return item, idx, nil
}
