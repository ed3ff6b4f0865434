// Package fifocache provides a bounded map with insertion-order eviction.
package fifocache

// Cache maps keys to values, holding at most its configured capacity.
// When a Put exceeds capacity the oldest-inserted entry is evicted,
// regardless of how recently it was read. Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	entries  map[K]V
	order    []K
}

// New constructs a Cache with the given capacity. Capacity must be positive.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]V, capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value, evicting the oldest insertion when over capacity.
// Re-putting an existing key replaces the value without changing its
// position in the eviction order.
func (c *Cache[K, V]) Put(key K, value V) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}
