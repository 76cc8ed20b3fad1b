// Package collapse performs the final Eulerian-style traversal that
// consumes a graph's edges and emits contig strings. It precomputes
// strongly-connected components (Tarjan's algorithm) so traversal can
// tell a bridge — an edge whose removal would separate its endpoints
// into different components — from an edge that lies on a cycle, and
// prefers following a non-bridge when a vertex offers exactly one of
// each.
package collapse
