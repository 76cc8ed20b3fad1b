package graph

import (
	"sync"

	"github.com/nbruijn/dbgasm/arena"
)

// Direction selects which side of a node's adjacency a query follows.
type Direction int

const (
	// Out selects a node's outgoing edges.
	Out Direction = iota
	// In selects a node's incoming edges.
	In
)

// nodeRecord is one slot in Graph.nodes. removed marks a tombstone:
// an index is never reused once allocated, matching the arena's own
// never-shrink discipline so indices handed out earlier in the
// pipeline remain valid identifiers even after the node they named
// is gone.
type nodeRecord struct {
	removed bool

	firstOut, lastOut int // head/tail of the outgoing chain, -1 if empty
	firstIn, lastIn   int // head/tail of the incoming chain, -1 if empty

	outDeg, inDeg int
}

// edgeRecord is one slot in Graph.edges. The outgoing chain (linking
// siblings that share a source) and the incoming chain (linking
// siblings that share a target) are each doubly linked, giving
// FirstOutEdge/NextOutEdge and FirstInEdge/NextInEdge their
// deterministic, insertion-ordered sibling iteration.
type edgeRecord struct {
	removed bool

	from, to int
	label    arena.EdgeSlice
	weight   int64

	nextOut, prevOut int // -1 terminates
	nextIn, prevIn   int // -1 terminates
}

// Graph is the indexed de Bruijn graph: stable integer node and edge
// indices over flat slices, with tombstoned removal.
//
// mu is a single RWMutex guarding both slices, mirroring the teacher
// package's "many readers, one writer" discipline; the assembly
// pipeline itself runs single-threaded; the lock is a correctness
// safeguard rather than a throughput feature.
type Graph struct {
	mu sync.RWMutex

	k1 int

	nodes []nodeRecord
	edges []edgeRecord

	liveNodes, liveEdges int
}

// New creates an empty Graph over (k-1)-mer vertices of length k1.
func New(k1 int) *Graph {
	return &Graph{k1: k1}
}

// K1 returns the fixed vertex length (K-1) this graph was built for.
func (g *Graph) K1() int {
	return g.k1
}
