package prune

import (
	"fmt"

	"github.com/nbruijn/dbgasm/graph"
)

// Pruner removes weak edges, isolated nodes, and dead-end tips from a
// graph in place.
type Pruner struct {
	g *graph.Graph
	k int
}

// New creates a Pruner bound to g, using k (the full k-mer length,
// not k-1) as the step bound for dead-path walks.
func New(g *graph.Graph, k int) (*Pruner, error) {
	if k <= 0 {
		return nil, fmt.Errorf("prune: New(k=%d): %w", k, ErrNonPositiveK)
	}

	return &Pruner{g: g, k: k}, nil
}

// RemoveWeakEdges deletes every edge whose weight is below threshold,
// then removes any node left with no incident edges.
func (p *Pruner) RemoveWeakEdges(threshold int64) error {
	for _, e := range p.g.Edges() {
		w, err := p.g.Weight(e)
		if err != nil {
			continue // already removed by an earlier iteration of this loop
		}
		if w < threshold {
			if err := p.g.RemoveEdge(e); err != nil {
				return err
			}
		}
	}

	return p.RemoveIsolatedNodes()
}

// RemoveIsolatedNodes deletes every node with zero in- and
// out-degree.
func (p *Pruner) RemoveIsolatedNodes() error {
	for _, n := range p.g.Nodes() {
		outDeg, err := p.g.OutDegree(n)
		if err != nil {
			continue
		}
		inDeg, err := p.g.InDegree(n)
		if err != nil {
			continue
		}
		if outDeg == 0 && inDeg == 0 {
			if err := p.g.RemoveNode(n); err != nil {
				return err
			}
		}
	}

	return nil
}

// RemoveDeadPaths repeatedly collects and deletes short tips until a
// fixed point: no input or output node's walk qualifies as dead in a
// given pass.
func (p *Pruner) RemoveDeadPaths() error {
	for {
		dead := make(map[int]struct{})

		for _, v := range p.g.Externals(graph.In) {
			path, isDead, err := p.walk(v, graph.Out)
			if err != nil {
				return err
			}
			if isDead {
				for _, n := range path {
					dead[n] = struct{}{}
				}
			}
		}

		for _, v := range p.g.Externals(graph.Out) {
			path, isDead, err := p.walk(v, graph.In)
			if err != nil {
				return err
			}
			if isDead {
				for _, n := range path {
					dead[n] = struct{}{}
				}
			}
		}

		if len(dead) == 0 {
			return nil
		}
		if err := p.deleteNodes(dead); err != nil {
			return err
		}
	}
}

// walk follows the first edge in direction dir from start for at most
// 2*k steps. Direction Out walks forward via outgoing edges (checking
// each new node's in-degree for a merge point); Direction In walks
// backward via incoming edges (checking each new node's out-degree).
// It returns the visited node set (excluding any terminating merge
// point) and whether the walk qualifies as dead.
func (p *Pruner) walk(start int, dir graph.Direction) (path []int, dead bool, err error) {
	current := start
	path = []int{start}

	for step := 0; step < 2*p.k; step++ {
		var edge int
		var ok bool
		if dir == graph.Out {
			edge, ok, err = p.g.FirstOutEdge(current)
		} else {
			edge, ok, err = p.g.FirstInEdge(current)
		}
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return path, true, nil
		}

		from, to, err := p.g.Endpoints(edge)
		if err != nil {
			return nil, false, err
		}
		next := to
		if dir == graph.In {
			next = from
		}

		var branchDeg int
		if dir == graph.Out {
			branchDeg, err = p.g.InDegree(next)
		} else {
			branchDeg, err = p.g.OutDegree(next)
		}
		if err != nil {
			return nil, false, err
		}
		if branchDeg > 1 {
			return path, true, nil
		}

		current = next
		path = append(path, current)
	}

	return nil, false, nil
}

// deleteNodes removes every incident edge of each node in dead, then
// removes the nodes themselves.
func (p *Pruner) deleteNodes(dead map[int]struct{}) error {
	for n := range dead {
		outs, err := p.g.OutEdges(n)
		if err != nil {
			return err
		}
		for _, e := range outs {
			if err := p.g.RemoveEdge(e); err != nil {
				return err
			}
		}

		ins, err := p.g.InEdges(n)
		if err != nil {
			return err
		}
		for _, e := range ins {
			if err := p.g.RemoveEdge(e); err != nil {
				return err
			}
		}
	}

	for n := range dead {
		if err := p.g.RemoveNode(n); err != nil {
			return err
		}
	}

	return nil
}
