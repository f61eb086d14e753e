// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvpath/heap"
)

// HeapTree writes entries, a heap array snapshot, as a tree rooted at index 0.
//
//	1 (D)
//	├── 3 (B)
//	│   └── 8 (C)
//	└── 2 (F)
//
// An empty snapshot writes "(empty)".
func HeapTree[K comparable, V any](w io.Writer, entries []heap.Entry[K, V]) error {
	bw := bufio.NewWriter(w)
	if len(entries) == 0 {
		fmt.Fprintln(bw, "(empty)")

		return bw.Flush()
	}

	var walk func(i int, prefix string)
	walk = func(i int, prefix string) {
		kids := heap.Children(i, len(entries))
		for n, c := range kids {
			branch, next := "├── ", "│   "
			if n == len(kids)-1 {
				branch, next = "└── ", "    "
			}
			fmt.Fprintf(bw, "%s%s%s\n", prefix, branch, entryLabel(entries[c]))
			walk(c, prefix+next)
		}
	}
	fmt.Fprintln(bw, entryLabel(entries[0]))
	walk(0, "")

	return bw.Flush()
}

func entryLabel[K comparable, V any](e heap.Entry[K, V]) string {
	return fmt.Sprintf("%s (%v)", FormatDistance(e.Priority), e.Key)
}

// DistanceTable writes one "id: distance" line per node in ascending ID order.
func DistanceTable(w io.Writer, dist map[int]float64, opts ...Option) error {
	cfg := newConfig(opts)
	ids := lo.Keys(dist)
	slices.Sort(ids)

	bw := bufio.NewWriter(w)
	for _, id := range ids {
		fmt.Fprintf(bw, "%s: %s\n", cfg.label(id), FormatDistance(dist[id]))
	}

	return bw.Flush()
}
