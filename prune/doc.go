// Package prune removes sequencing-error artifacts from a graph:
// low-weight edges, nodes stranded by their removal, and short
// dead-end paths ("tips") that terminate without rejoining the graph
// within a couple of k-mer lengths.
//
// All three operations work directly on a *graph.Graph using its
// index-stable node/edge API; nothing here touches the arena except
// indirectly through graph.Label when a caller wants to log a
// removed edge's sequence.
package prune
