package gir

import (
	"github.com/nbruijn/dbgasm/arena"
)

// AdjEntry is one outgoing transition observed from a vertex: it led
// to the vertex at TargetIdx weight times, appending base LastNT.
type AdjEntry struct {
	TargetIdx int
	Weight    int64
	LastNT    byte
}

// vertex is one (k-1)-mer discovered during ingestion. node addresses
// its canonical arena entry; idx is its position in insertion order,
// which becomes its node index in the converted graph.Graph.
type vertex struct {
	node arena.NodeSlice
	idx  int
	adj  []AdjEntry
}

// GIR is the hash-indexed vertex set being assembled from reads.
type GIR struct {
	a *arena.Arena

	buckets map[uint64][]*vertex
	order   []*vertex
}

// New creates an empty GIR over the given arena. The arena's fixed
// k-mer length governs every window IngestRead slides across a read.
func New(a *arena.Arena) *GIR {
	return &GIR{a: a, buckets: make(map[uint64][]*vertex)}
}

// Len returns the number of distinct vertices discovered so far.
func (g *GIR) Len() int {
	return len(g.order)
}

// VertexString decodes the (k-1)-mer of the vertex holding node index
// idx (its position in insertion order, the same index it will
// occupy in the graph ToGraph produces).
func (g *GIR) VertexString(idx int) (string, error) {
	if idx < 0 || idx >= len(g.order) {
		return "", ErrVertexNotFound
	}

	return g.order[idx].node.String()
}

// Adjacency returns a copy of vertex idx's outgoing adjacency list.
func (g *GIR) Adjacency(idx int) ([]AdjEntry, error) {
	if idx < 0 || idx >= len(g.order) {
		return nil, ErrVertexNotFound
	}

	return append([]AdjEntry(nil), g.order[idx].adj...), nil
}

// lookup finds the vertex whose canonical bytes equal view's decoded
// bytes, scanning only the hash bucket view falls in.
func (g *GIR) lookup(view arena.NodeSlice) (*vertex, error) {
	h, err := view.Hash()
	if err != nil {
		return nil, err
	}
	for _, v := range g.buckets[h] {
		eq, err := v.node.Equal(view)
		if err != nil {
			return nil, err
		}
		if eq {
			return v, nil
		}
	}

	return nil, nil
}

// insert adds a newly created vertex to both the hash index and the
// insertion-ordered list that defines its graph node index.
func (g *GIR) insert(v *vertex) error {
	h, err := v.node.Hash()
	if err != nil {
		return err
	}
	g.buckets[h] = append(g.buckets[h], v)
	g.order = append(g.order, v)

	return nil
}

// recordEdge increments the weight of the existing (source, lastNT)
// transition, or appends a new one with weight 1.
func recordEdge(src *vertex, targetIdx int, lastNT byte) {
	for i := range src.adj {
		if src.adj[i].LastNT == lastNT {
			src.adj[i].Weight++
			return
		}
	}
	src.adj = append(src.adj, AdjEntry{TargetIdx: targetIdx, Weight: 1, LastNT: lastNT})
}
