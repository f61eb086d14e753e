// SPDX-License-Identifier: MIT

package heap

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates Peek or PopMin was called on a heap with no entries.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrDuplicateKey indicates Push was called with a key that is already resident.
	// Use UpdatePriority to change the priority of an existing key.
	ErrDuplicateKey = errors.New("heap: duplicate key")

	// ErrKeyNotFound indicates UpdatePriority was called with a key that is not resident.
	ErrKeyNotFound = errors.New("heap: key not found")

	// ErrInvalidPriority indicates a NaN priority.
	ErrInvalidPriority = errors.New("heap: priority is NaN")

	// ErrCorrupted indicates that Validate found a violated heap or index invariant.
	ErrCorrupted = errors.New("heap: invariant violated")
)

// Entry is a single heap element.
//
// Priority orders entries (smaller first), Key identifies the entry for
// UpdatePriority and Contains, Payload is carried along untouched.
type Entry[K comparable, V any] struct {
	Priority float64
	Key      K
	Payload  V
}

// Option configures a Heap at construction time.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	capacity int
	tieBreak func(a, b K) bool
}

// WithCapacity preallocates room for n entries in both the backing array and
// the index map. Negative n panics.
func WithCapacity[K comparable](n int) Option[K] {
	if n < 0 {
		panic("heap: negative capacity")
	}

	return func(o *options[K]) { o.capacity = n }
}

// WithTieBreak orders entries with equal priority by less(a.Key, b.Key).
// less must be a strict weak ordering; a nil less removes any tie-break.
func WithTieBreak[K comparable](less func(a, b K) bool) Option[K] {
	return func(o *options[K]) { o.tieBreak = less }
}

// Parent returns the index of the parent of slot i. The root (i == 0) has no
// parent and Parent returns -1 for it.
func Parent(i int) int {
	if i <= 0 {
		return -1
	}

	return (i - 1) / 2
}

// Children returns the indices of the existing children of slot i in a heap
// holding n entries: zero, one or two values, left child first.
func Children(i, n int) []int {
	children := make([]int, 0, 2)
	if l := 2*i + 1; l < n {
		children = append(children, l)
	}
	if r := 2*i + 2; r < n {
		children = append(children, r)
	}

	return children
}

// NewOrdered creates an empty heap whose equal-priority entries are ordered
// by their keys (cmp.Less). Extra options are applied after the tie-break.
func NewOrdered[K cmp.Ordered, V any](opts ...Option[K]) *Heap[K, V] {
	all := make([]Option[K], 0, len(opts)+1)
	all = append(all, WithTieBreak[K](cmp.Less[K]))
	all = append(all, opts...)

	return New[K, V](all...)
}
