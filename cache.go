package lfu

import (
	"iter"
	"maps"
)

// Cache pairs a [Tracker] with value storage.
// Values of evicted keys are discarded.
// Concurrent access must be guarded by the caller.
// Constructed by [NewCache].
type Cache[Key comparable, Value any] struct {
	tracker *Tracker[Key]
	values  map[Key]Value
}

// NewCache creates a [Cache] with the given capacity.
// Capacity must be at least [MinimumCapacity].
func NewCache[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	tracker, err := New[Key](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[Key, Value]{
		tracker: tracker,
		values:  make(map[Key]Value, capacity),
	}, nil
}

// Load returns the cached value for key (if resident). Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Get returns the Value for key if it is resident
// in the cache, and counts the access;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	value, ok := c.values[key]
	if !ok {
		return value, false
	}
	c.tracker.Access(key)
	return value, true
}

// Set inserts or updates key with value
// and counts the access.
func (c *Cache[Key, Value]) Set(key Key, value Value) {
	if evicted, ok := c.tracker.Access(key); ok {
		delete(c.values, evicted)
	}
	c.values[key] = value
}

// Len returns the number of resident values.
func (c *Cache[_, _]) Len() int { return len(c.values) }

// Keys returns an iterator over the (unordered) keys of resident values.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] { return maps.Keys(c.values) }
