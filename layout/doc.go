// SPDX-License-Identifier: MIT

// Package layout places graph nodes in the plane with a spectral embedding
// of the graph Laplacian, for drawing only.
//
// Algorithm:
//
//  1. Build L = D − A over the nodes in ascending ID order. By default L is
//     unweighted (D counts neighbor-list entries, every entry adds −1);
//     WithWeights() uses the edge weights instead.
//  2. Eigen-decompose L (gonum.org/v1/gonum/mat.EigenSym); eigenvalues ascend.
//  3. Skip the eigenvalues below 1e-10 (one per connected component) and use
//     the next two eigenpairs: x = λk·vk, y = λk+1·vk+1.
//     With only one non-trivial pair (a single edge) every y is 0; with none
//     (no edges) nodes are placed at x = 0, 1, 2, … in ID order.
//
// The package reads the graph and never mutates it. It has no coupling to
// the heap or the traversal; distances are only used later, by render.
//
// Complexity: O(V³) for the dense eigen-decomposition, O(V²) memory.
package layout
