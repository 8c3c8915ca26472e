// Package lfu implements a bounded least-frequently-used eviction [Tracker],
// and a [Cache] built on top of it.
//
// A [Tracker] does not hold values. Each call to [Tracker.Access]
// reports at most one key that the caller should discard
// to keep the tracked set within its capacity.
//
// The following is a summary intended for maintainers.
//
// Structure:
//
//   - Heap
//
//     An array-backed binary min-heap of (key, frequency) entries
//     occupying slots [0, size). Every parent is no more frequent
//     than its children (2i+1, 2i+2), so slot 0 always holds
//     a least-frequently-used key.
//
//   - Index
//
//     A map from each tracked key to its current heap slot.
//     index[key] == i iff heap[i].key == key.
//     Swapping two slots swaps both index entries in the same step.
//
// Operations (all O(log capacity)):
//
//   - Hit
//
//     The key's frequency is incremented and the entry is sifted down.
//     Increasing a frequency cannot violate the order with respect to ancestors.
//     Hits never evict.
//
//   - Miss
//
//     If the heap is full, the root is evicted: it is swapped with the last slot,
//     removed from the index, and the new root is sifted down.
//     The new key is then appended with frequency 1 and sifted up.
//
// Ties:
//
//   - There is no secondary ordering key. Among entries of equal frequency,
//     whichever occupies the root is evicted; this depends on the history
//     of admissions and hits, not on recency.
//
// Counts:
//
//   - Frequencies saturate at the maximum uint64 rather than wrapping.
//
//   - 0 < size <= capacity after the first access; capacity never changes.
//
// Building with the `lfu_debug` tag validates the heap and index after every access.
package lfu
