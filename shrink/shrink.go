package shrink

import (
	"github.com/nbruijn/dbgasm/arena"
	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/nucl"
	"github.com/nbruijn/dbgasm/prune"
)

// MergeWeight combines the weight carried by a contracted chain so far
// with the weight of the next edge being folded into it. The default
// keeps the first edge's weight, discarding the rest; callers that
// want, say, a running average can replace this before calling
// Shrink.
var MergeWeight = func(chainWeight, nextWeight int64) int64 {
	return chainWeight
}

// Shrinker contracts linear (in-degree 1, out-degree 1) chains of a
// graph into single edges.
type Shrinker struct {
	g  *graph.Graph
	a  *arena.Arena
	k1 int
}

// New creates a Shrinker bound to g, using a to pack contracted edge
// labels.
func New(g *graph.Graph, a *arena.Arena) (*Shrinker, error) {
	if g == nil || a == nil {
		return nil, ErrNilGraphOrArena
	}

	return &Shrinker{g: g, a: a, k1: a.K1()}, nil
}

// Shrink contracts every maximal linear path reachable from an
// in-degree-0 node, then sweeps any remaining pure cycles (loops with
// no entry point), and finally removes nodes left isolated by the
// contraction.
func (s *Shrinker) Shrink() error {
	visited := make(map[int]bool)

	for _, n := range s.g.Externals(graph.In) {
		if err := s.dfs(n, visited); err != nil {
			return err
		}
	}
	for _, n := range s.g.Nodes() {
		if visited[n] {
			continue
		}
		if err := s.dfs(n, visited); err != nil {
			return err
		}
	}

	p, err := prune.New(s.g, 1)
	if err != nil {
		return err
	}

	return p.RemoveIsolatedNodes()
}

// dfs walks outward from n, contracting every linear run it meets
// before descending into whatever lies beyond it.
func (s *Shrinker) dfs(n int, visited map[int]bool) error {
	if visited[n] {
		return nil
	}
	visited[n] = true

	edges, err := s.g.OutEdges(n)
	if err != nil {
		return err
	}

	for _, e := range edges {
		_, target, err := s.g.Endpoints(e)
		if err != nil {
			continue // already contracted away earlier in this loop
		}

		next := target
		if straight, err := s.isStraight(target, n); err != nil {
			return err
		} else if straight {
			_, finalTarget, err := s.contractFrom(n, e)
			if err != nil {
				return err
			}
			next = finalTarget
		}

		if err := s.dfs(next, visited); err != nil {
			return err
		}
	}

	return nil
}

// isStraight reports whether node is a pure pass-through: in-degree 1
// and out-degree 1, and not the node the chain started from (which
// would mean the chain has already closed a pure cycle).
func (s *Shrinker) isStraight(node, chainStart int) (bool, error) {
	if node == chainStart {
		return false, nil
	}
	in, err := s.g.InDegree(node)
	if err != nil {
		return false, err
	}
	out, err := s.g.OutDegree(node)
	if err != nil {
		return false, err
	}

	return in == 1 && out == 1, nil
}

// contractFrom absorbs node after node into baseEdge, starting at
// start, for as long as the chain keeps running through in=1/out=1
// nodes. It returns the final surviving edge and the node it now
// terminates at.
func (s *Shrinker) contractFrom(start, baseEdge int) (edge, finalTarget int, err error) {
	base := baseEdge
	for {
		_, mid, err := s.g.Endpoints(base)
		if err != nil {
			return 0, 0, err
		}

		nextEdge, ok, err := s.g.FirstOutEdge(mid)
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return base, mid, nil
		}
		_, target, err := s.g.Endpoints(nextEdge)
		if err != nil {
			return 0, 0, err
		}

		merged, weight, err := s.mergeEdges(base, nextEdge)
		if err != nil {
			return 0, 0, err
		}

		hi, lo := base, nextEdge
		if lo > hi {
			hi, lo = lo, hi
		}
		if err := s.g.RemoveEdge(hi); err != nil {
			return 0, 0, err
		}
		if err := s.g.RemoveEdge(lo); err != nil {
			return 0, 0, err
		}

		newIdx, err := s.g.AddEdge(start, target, merged, weight)
		if err != nil {
			return 0, 0, err
		}

		base = newIdx
		straight, err := s.isStraight(target, start)
		if err != nil {
			return 0, 0, err
		}
		if !straight {
			return base, target, nil
		}
	}
}

// mergeEdges extends base's packed label with next's label, skipping
// next's leading (k-1) bases (the shared overlap with base's own
// suffix), and combines their weights via MergeWeight.
func (s *Shrinker) mergeEdges(base, next int) (arena.EdgeSlice, int64, error) {
	baseLabel, err := s.g.Label(base)
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}
	nextLabel, err := s.g.Label(next)
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}

	baseRaw, err := s.a.Read(baseLabel.Idx)
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}
	nextSeq, err := nextLabel.Bytes()
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}

	extended, err := nucl.ExtendEdge(baseRaw, nextSeq[s.k1:])
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}

	baseWeight, err := s.g.Weight(base)
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}
	nextWeight, err := s.g.Weight(next)
	if err != nil {
		return arena.EdgeSlice{}, 0, err
	}

	return s.a.EdgeView(s.a.Push(extended)), MergeWeight(baseWeight, nextWeight), nil
}
