package audio

import "sync"

// Cache loads each named asset at most once. Failed loads are remembered
// too, so a missing file is reported once instead of every time it plays.
type Cache[T any] struct {
	mu      sync.Mutex
	load    func(name string) (T, error)
	entries map[string]cacheEntry[T]
}

type cacheEntry[T any] struct {
	val T
	err error
}

// NewCache creates a cache backed by load.
func NewCache[T any](load func(name string) (T, error)) *Cache[T] {
	return &Cache[T]{
		load:    load,
		entries: make(map[string]cacheEntry[T]),
	}
}

// Get returns the asset for name, loading it on first use.
func (c *Cache[T]) Get(name string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok {
		return e.val, e.err
	}
	val, err := c.load(name)
	c.entries[name] = cacheEntry[T]{val: val, err: err}
	return val, err
}

// Len returns the number of names loaded so far.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
