// Package shrink contracts every maximal linear path — a run of nodes
// with in-degree 1 and out-degree 1 — into a single edge whose label
// is the concatenation of the path's edge labels (the shared (k-1)-mer
// overlap at each join is not duplicated) and whose weight is the
// first edge's weight.
//
// Traversal starts from every node with in-degree 0 and falls back to
// an arbitrary unvisited node for any remaining pure cycle (a loop
// with no entry point, every member having in-degree 1 and
// out-degree 1), matching the graph's own concurrency-free, indexed
// adjacency.
package shrink
