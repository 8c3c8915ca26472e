// Package freqheap is a fixed-capacity binary min-heap of access frequencies
// for use in LFU eviction.
//
// The heap is paired with an index of each key's current slot,
// so that a specific key can be found and re-ordered without a scan.
// Every swap of two slots updates both keys' index entries in the same step.
package freqheap

import (
	"fmt"
	"math"
)

type (
	// Entry is a tracked key along with its access count.
	Entry[Key comparable] struct {
		// Key identifies the accessed data.
		Key Key
		// Frequency starts at 1 when the key is admitted
		// and is incremented on every subsequent access.
		// It saturates at [MaxFrequency] rather than wrapping.
		Frequency uint64
	}
	// Heap orders entries by Frequency such that slot 0
	// always holds a least-frequently-used key.
	// Concurrent access must be guarded by the caller.
	Heap[Key comparable] struct {
		index    map[Key]int
		entries  []Entry[Key]
		capacity int
	}
)

// MaxFrequency is the value at which an entry's count stops increasing.
const MaxFrequency = math.MaxUint64

// New creates an empty heap that holds at most capacity entries.
// Capacity must be positive.
func New[Key comparable](capacity int) *Heap[Key] {
	return &Heap[Key]{
		index:    make(map[Key]int, capacity),
		entries:  make([]Entry[Key], 0, capacity),
		capacity: capacity,
	}
}

// Lookup returns the slot currently holding key, if key is tracked.
func (h *Heap[Key]) Lookup(key Key) (int, bool) {
	slot, ok := h.index[key]
	return slot, ok
}

// Len returns the number of tracked keys.
func (h *Heap[_]) Len() int { return len(h.entries) }

// Cap returns the maximum number of tracked keys.
func (h *Heap[_]) Cap() int { return h.capacity }

// Admit starts tracking key with a frequency of 1.
// Key must not already be tracked.
// If the heap is full, the root is evicted first
// and its key is returned.
func (h *Heap[Key]) Admit(key Key) (evicted Key, ok bool) {
	if len(h.entries) == h.capacity {
		evicted, ok = h.evictRoot(), true
	}
	slot := len(h.entries)
	h.entries = append(h.entries, Entry[Key]{
		Key:       key,
		Frequency: 1,
	})
	h.index[key] = slot
	h.up(slot)
	return evicted, ok
}

// Bump records another access to the entry at slot.
// Increasing a frequency can only violate the
// heap order with respect to the entry's children.
func (h *Heap[_]) Bump(slot int) {
	entry := &h.entries[slot]
	if entry.Frequency == MaxFrequency {
		return
	}
	entry.Frequency++
	h.down(slot)
}

func (h *Heap[Key]) evictRoot() Key {
	var (
		last = len(h.entries) - 1
		key  = h.entries[0].Key
	)
	h.swap(0, last)
	delete(h.index, key)
	h.entries[last] = Entry[Key]{}
	h.entries = h.entries[:last]
	h.down(0)
	return key
}

func (h *Heap[_]) up(i int) {
	for i != 0 {
		parent := (i - 1) / 2
		if h.entries[parent].Frequency <= h.entries[i].Frequency {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// down sinks the entry at i until neither child is less frequent.
// Ties keep the lower slot (i, then left, then right).
func (h *Heap[_]) down(i int) {
	size := len(h.entries)
	for {
		smallest := i
		if left := 2*i + 1; left < size &&
			h.entries[left].Frequency < h.entries[smallest].Frequency {
			smallest = left
		}
		if right := 2*i + 2; right < size &&
			h.entries[right].Frequency < h.entries[smallest].Frequency {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges slots i and j along with their index entries.
func (h *Heap[_]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].Key] = i
	h.index[h.entries[j].Key] = j
}

// Validate reports the first inconsistency found between
// the heap order, the index, and the capacity bound.
func (h *Heap[_]) Validate() error {
	size := len(h.entries)
	if size > h.capacity {
		return fmt.Errorf("size %d exceeds capacity %d", size, h.capacity)
	}
	if indexed := len(h.index); indexed != size {
		return fmt.Errorf("index holds %d keys but heap holds %d", indexed, size)
	}
	for i, entry := range h.entries {
		if slot, ok := h.index[entry.Key]; !ok || slot != i {
			return fmt.Errorf(
				"key %v at slot %d is indexed at %d (present: %t)",
				entry.Key, i, slot, ok)
		}
		if i == 0 {
			continue
		}
		parent := (i - 1) / 2
		if pf, cf := h.entries[parent].Frequency, entry.Frequency; pf > cf {
			return fmt.Errorf(
				"slot %d (frequency %d) is more frequent than its child %d (frequency %d)",
				parent, pf, i, cf)
		}
	}
	return nil
}
