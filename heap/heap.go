// SPDX-License-Identifier: MIT

package heap

import (
	"fmt"
	"math"
)

// Heap is an indexed binary min-heap keyed by K and carrying payloads of type V.
//
// entries is the implicit tree; index[k] == i iff entries[i].Key == k.
// The zero value is not usable; construct with New or NewOrdered.
type Heap[K comparable, V any] struct {
	entries  []Entry[K, V]
	index    map[K]int
	tieBreak func(a, b K) bool
}

// New creates an empty heap configured by opts.
// Complexity: O(capacity) for the preallocation, O(1) otherwise.
func New[K comparable, V any](opts ...Option[K]) *Heap[K, V] {
	var cfg options[K]
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[K, V]{
		entries:  make([]Entry[K, V], 0, cfg.capacity),
		index:    make(map[K]int, cfg.capacity),
		tieBreak: cfg.tieBreak,
	}
}

// Size returns the number of resident entries. O(1).
func (h *Heap[K, V]) Size() int { return len(h.entries) }

// Contains reports whether key is resident. O(1).
func (h *Heap[K, V]) Contains(key K) bool {
	_, ok := h.index[key]

	return ok
}

// Priority returns the current priority of key, and false if key is not resident. O(1).
func (h *Heap[K, V]) Priority(key K) (float64, bool) {
	i, ok := h.index[key]
	if !ok {
		return 0, false
	}

	return h.entries[i].Priority, true
}

// Push inserts a new entry and restores the heap invariant by sifting it up.
//
// Errors:
//   - ErrDuplicateKey if key is already resident (the heap is left unchanged).
//   - ErrInvalidPriority if priority is NaN.
//
// Complexity: O(log n), amortized O(1) for the append itself.
func (h *Heap[K, V]) Push(priority float64, key K, payload V) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: key=%v", ErrInvalidPriority, key)
	}
	if _, ok := h.index[key]; ok {
		return fmt.Errorf("%w: key=%v", ErrDuplicateKey, key)
	}

	i := len(h.entries)
	h.entries = append(h.entries, Entry[K, V]{Priority: priority, Key: key, Payload: payload})
	h.index[key] = i
	h.up(i)

	return nil
}

// Peek returns the minimum entry without removing it.
// Returns ErrEmptyHeap when the heap has no entries. O(1).
func (h *Heap[K, V]) Peek() (Entry[K, V], error) {
	if len(h.entries) == 0 {
		var zero Entry[K, V]
		return zero, ErrEmptyHeap
	}

	return h.entries[0], nil
}

// PopMin removes and returns the minimum entry.
//
// The last entry is moved into the root slot, the popped key leaves the
// index, the moved key's slot is rewritten and the root is sifted down.
// Returns ErrEmptyHeap when the heap has no entries. O(log n).
func (h *Heap[K, V]) PopMin() (Entry[K, V], error) {
	n := len(h.entries)
	if n == 0 {
		var zero Entry[K, V]
		return zero, ErrEmptyHeap
	}

	root := h.entries[0]
	if n == 1 {
		h.entries = h.entries[:0]
		clear(h.index)

		return root, nil
	}

	last := h.entries[n-1]
	h.entries[n-1] = Entry[K, V]{} // release payload references held by the dead slot
	h.entries = h.entries[:n-1]
	h.entries[0] = last
	delete(h.index, root.Key)
	h.index[last.Key] = 0
	h.down(0)

	return root, nil
}

// UpdatePriority changes the priority of a resident key and restores the
// heap invariant. A smaller priority sifts the entry up, a larger one sifts
// it down; equal priorities leave the heap untouched.
//
// Errors:
//   - ErrKeyNotFound if key is not resident.
//   - ErrInvalidPriority if priority is NaN.
//
// Complexity: O(1) lookup + O(log n) sift.
func (h *Heap[K, V]) UpdatePriority(key K, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: key=%v", ErrInvalidPriority, key)
	}
	i, ok := h.index[key]
	if !ok {
		return fmt.Errorf("%w: key=%v", ErrKeyNotFound, key)
	}

	h.entries[i].Priority = priority
	if i > 0 && h.less(i, Parent(i)) {
		h.up(i)
	} else {
		h.down(i)
	}

	return nil
}

// Entries returns a copy of the backing array in slot order. Slot i of the
// result has its parent at Parent(i) and its children at Children(i, len).
// The copy is detached: mutating it does not affect the heap. O(n).
func (h *Heap[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(h.entries))
	copy(out, h.entries)

	return out
}

// Clear removes every entry, keeping the allocated capacity.
func (h *Heap[K, V]) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
	clear(h.index)
}

// Validate checks the min-heap property for every non-root slot and that the
// index map points every resident key at the slot that holds it.
// Returns an error wrapping ErrCorrupted on the first violation found. O(n).
func (h *Heap[K, V]) Validate() error {
	if len(h.index) != len(h.entries) {
		return fmt.Errorf("%w: index holds %d keys for %d entries", ErrCorrupted, len(h.index), len(h.entries))
	}
	for i, e := range h.entries {
		j, ok := h.index[e.Key]
		if !ok || j != i {
			return fmt.Errorf("%w: key=%v at slot %d indexed at %d", ErrCorrupted, e.Key, i, j)
		}
		if i > 0 && h.less(i, Parent(i)) {
			return fmt.Errorf("%w: slot %d (%v) precedes its parent slot %d (%v)",
				ErrCorrupted, i, e.Priority, Parent(i), h.entries[Parent(i)].Priority)
		}
	}

	return nil
}

// less reports whether slot i must sit above slot j.
func (h *Heap[K, V]) less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if h.tieBreak != nil {
		return h.tieBreak(a.Key, b.Key)
	}

	return false
}

// swap exchanges two slots and rewrites both index entries with them.
func (h *Heap[K, V]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].Key] = i
	h.index[h.entries[j].Key] = j
}

// up moves slot i towards the root while it precedes its parent.
func (h *Heap[K, V]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down moves slot i towards the leaves while a child precedes it.
func (h *Heap[K, V]) down(i int) {
	n := len(h.entries)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		smallest := l
		if r := l + 1; r < n && h.less(r, l) {
			smallest = r
		}
		if !h.less(smallest, i) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
