package lfu

import (
	"fmt"

	"github.com/djdv/go-lfu/internal/freqheap"
)

// Tracker decides which key to evict from a bounded set,
// using a least-frequently-used policy.
// It stores key identity and access counts only;
// payloads are left to the caller (see [Cache]).
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Tracker[Key comparable] struct {
	frequencies *freqheap.Heap[Key]
}

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Tracker] with the given capacity.
// Capacity must be at least [MinimumCapacity]
// and never changes afterwards.
func New[Key comparable](capacity int) (*Tracker[Key], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Tracker[Key]{
		frequencies: freqheap.New[Key](capacity),
	}, nil
}

// Access records a reference to key.
// If key is not yet tracked and the tracker is full,
// a least-frequently-used key is evicted to make room
// and returned with ok set to true.
// Among keys of equal frequency the choice is unspecified.
func (t *Tracker[Key]) Access(key Key) (evicted Key, ok bool) {
	if slot, tracked := t.frequencies.Lookup(key); tracked {
		t.frequencies.Bump(slot)
	} else {
		evicted, ok = t.frequencies.Admit(key)
	}
	if debugging {
		err := t.frequencies.Validate()
		assert(err == nil, fmt.Sprintf(
			"heap inconsistent after accessing %v: %v",
			key, err))
	}
	return evicted, ok
}
