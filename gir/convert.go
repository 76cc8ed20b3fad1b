package gir

import (
	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/nucl"
)

// cachedIdentity holds what ToGraph needs to build a vertex's first
// outgoing edge, captured before any arena mutation begins.
//
// Ingestion can leave a vertex owning either half of its arena entry
// (see doc.go): a vertex first discovered as a new source always owns
// the prefix half, and its entry's raw kmer-layout bytes still encode
// exactly the window that created it — kmer_to_edge applies directly.
// A vertex first discovered as a new target owns the suffix half of
// an entry whose prefix belongs to a different vertex (or, when the
// source already existed, to bytes no vertex references at all); that
// entry cannot be handed to kmer_to_edge, since its prefix is not this
// vertex's own (k-1)-mer. Those vertices fall back to reconstructing
// their own decoded bytes directly.
type cachedIdentity struct {
	rawKmer []byte // valid when the vertex owns its entry's prefix half
	decoded []byte // valid otherwise
}

// ToGraph converts the GIR into an indexed graph.Graph, allocating one
// graph node per vertex (at its idx) and, for each outgoing adjacency
// entry, one freshly packed edge-layout arena entry.
//
// Every vertex's identity bytes are read in a first pass, before any
// new edge entries are pushed or any original vertex entry is
// cleared, so that two vertices sharing one arena entry (a source and
// its first-discovered target) never observe one half of that entry
// rewritten out from under the other's pending read.
func (g *GIR) ToGraph(k int) (*graph.Graph, error) {
	gr := graph.New(g.a.K1())
	for range g.order {
		gr.AddNode()
	}

	cache := make([]cachedIdentity, len(g.order))
	for i, v := range g.order {
		if v.node.Offset%2 == 0 {
			raw, err := g.a.Read(v.node.EntryIndex())
			if err != nil {
				return nil, err
			}
			cache[i] = cachedIdentity{rawKmer: raw}
			continue
		}
		decoded, err := v.node.Bytes()
		if err != nil {
			return nil, err
		}
		cache[i] = cachedIdentity{decoded: decoded}
	}

	for i, v := range g.order {
		if len(v.adj) == 0 {
			continue
		}

		var firstEdge []byte
		var err error
		if cache[i].rawKmer != nil {
			firstEdge, err = nucl.KmerToEdge(cache[i].rawKmer, k)
		} else {
			seq := append(append([]byte(nil), cache[i].decoded...), v.adj[0].LastNT)
			firstEdge, err = nucl.CompressEdge(seq)
		}
		if err != nil {
			return nil, err
		}

		idx0 := g.a.Push(firstEdge)
		if _, err := gr.AddEdge(v.idx, v.adj[0].TargetIdx, g.a.EdgeView(idx0), v.adj[0].Weight); err != nil {
			return nil, err
		}

		for _, e := range v.adj[1:] {
			changed, err := nucl.ChangeLastCharInEdge(firstEdge, e.LastNT)
			if err != nil {
				return nil, err
			}
			idx := g.a.Push(changed)
			if _, err := gr.AddEdge(v.idx, e.TargetIdx, g.a.EdgeView(idx), e.Weight); err != nil {
				return nil, err
			}
		}
	}

	seen := make(map[int]bool, len(g.order))
	for _, v := range g.order {
		idx := v.node.EntryIndex()
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if err := g.a.Clear(idx); err != nil {
			return nil, err
		}
	}

	return gr, nil
}
