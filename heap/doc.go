// SPDX-License-Identifier: MIT

// Package heap provides an indexed binary min-heap: a priority queue whose
// entries carry a stable key, so that the priority of a resident entry can
// be changed in place ("decrease-key", or increase) in O(log n).
//
// Overview:
//
//   - Entries are (Priority, Key, Payload) triples stored in one contiguous
//     slice. The tree shape is implicit: parent(i) = (i-1)/2 and the children
//     of i are 2i+1 and 2i+2.
//   - A side table maps every resident key to its current slot. Every swap
//     performed by sift-up or sift-down rewrites both slots of that table
//     together with the swap, so the table is never rebuilt from scratch.
//   - Priorities are opaque float64 values. The heap has no notion of
//     "distance"; it only orders what it is given.
//
// Complexity:
//
//   - Push, PopMin, UpdatePriority: O(log n)
//   - Peek, Size, Contains, Priority: O(1)
//   - Entries, Validate: O(n)
//
// Ordering and ties:
//
//   - An entry a precedes b when a.Priority < b.Priority.
//   - Equal priorities are broken by the optional tie-break on keys
//     (WithTieBreak, or NewOrdered for cmp.Ordered keys). Without one, ties
//     resolve by position, which is still deterministic for a given sequence
//     of operations.
//   - Sift-down prefers the left child unless the right child is strictly less.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrEmptyHeap       Peek or PopMin on an empty heap.
//   - ErrDuplicateKey    Push with a key that is already resident.
//   - ErrKeyNotFound     UpdatePriority on a key that is not resident.
//   - ErrInvalidPriority NaN priority (it would break the ordering).
//   - ErrCorrupted       Validate found a broken invariant.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Give each traversal its own
//     instance.
//
// Example:
//
//	h := heap.NewOrdered[string, int]()
//	_ = h.Push(10, "a", 0)
//	_ = h.Push(5, "b", 0)
//	_ = h.UpdatePriority("a", 1)
//	e, _ := h.PopMin() // e.Key == "a"
package heap
