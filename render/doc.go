// SPDX-License-Identifier: MIT

// Package render draws the results of the other packages for humans:
//
//   - HeapTree writes a heap snapshot (heap.Entries) as an indented tree,
//     each node labelled "priority (key)";
//   - DistanceTable writes "id: distance" lines in ascending ID order,
//     with "inf" for unreachable nodes;
//   - GraphSVG draws a graph with a layout.Layout, labelling nodes
//     "id (distance)" and edges with their weight at the midpoint.
//
// Rendering is read-only: inputs are never modified.
package render
