// SPDX-License-Identifier: MIT

package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/heap"
)

// ExampleHeap_UpdatePriority shows decrease-key on a resident entry.
func ExampleHeap_UpdatePriority() {
	h := heap.NewOrdered[string, struct{}]()
	_ = h.Push(10, "A", struct{}{})
	_ = h.Push(5, "B", struct{}{})
	_ = h.Push(20, "C", struct{}{})

	_ = h.UpdatePriority("C", 1)

	for h.Size() > 0 {
		e, _ := h.PopMin()
		fmt.Printf("%s=%g ", e.Key, e.Priority)
	}
	fmt.Println()
	// Output: C=1 B=5 A=10
}

// ExampleHeap_PopMin pushes unsorted priorities and pops them in order.
func ExampleHeap_PopMin() {
	h := heap.New[int, struct{}]()
	for i, p := range []float64{5, 3, 8, 1, 9, 2} {
		_ = h.Push(p, i, struct{}{})
	}
	for h.Size() > 0 {
		e, _ := h.PopMin()
		fmt.Print(e.Priority, " ")
	}
	fmt.Println()
	// Output: 1 2 3 5 8 9
}
