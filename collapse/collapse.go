package collapse

import (
	"github.com/nbruijn/dbgasm/graph"
)

// Collapser consumes a graph's edges via Eulerian-style traversal,
// emitting one contig string per maximal run.
type Collapser struct {
	g  *graph.Graph
	k1 int
	cfg config
}

// New creates a Collapser bound to g.
func New(g *graph.Graph, opts ...Option) (*Collapser, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Collapser{g: g, k1: g.K1(), cfg: cfg}, nil
}

// Collapse precomputes strongly-connected components, then consumes
// every edge: first by walking from each node with no incoming edge
// (the graph's sources) until each run dead-ends, then, for whatever
// edges remain once no sources are left, by repeatedly picking the
// globally weakest remaining edge as a fresh cycle entry point and
// walking until that cycle breaks at its own weakest link. It returns
// every emitted contig string.
func (c *Collapser) Collapse() ([]string, error) {
	comp, err := componentsOf(c.g)
	if err != nil {
		return nil, err
	}

	var contigs []string
	for _, src := range c.g.Externals(graph.In) {
		produced, err := c.traverse(src, comp)
		if err != nil {
			return nil, err
		}
		contigs = append(contigs, produced...)
	}

	for c.g.EdgeCount() > 0 {
		weakest, err := c.weakestEdge()
		if err != nil {
			return nil, err
		}
		start, _, err := c.g.Endpoints(weakest)
		if err != nil {
			return nil, err
		}
		produced, err := c.traverse(start, comp)
		if err != nil {
			return nil, err
		}
		contigs = append(contigs, produced...)
	}

	return contigs, nil
}

// weakestEdge returns the surviving edge with the lowest weight.
func (c *Collapser) weakestEdge() (int, error) {
	edges := c.g.Edges()
	weakest := edges[0]
	weakestWeight, err := c.g.Weight(weakest)
	if err != nil {
		return 0, err
	}
	for _, e := range edges[1:] {
		w, err := c.g.Weight(e)
		if err != nil {
			return 0, err
		}
		if w < weakestWeight {
			weakest, weakestWeight = e, w
		}
	}

	return weakest, nil
}

// traverse walks forward from start, consuming one edge per step,
// until the current vertex has no outgoing edge left. A branch point
// with more than one viable continuation closes off the contig built
// so far and opens a new one seeded at the branch vertex's own
// (k-1)-mer, unless exactly one of its first two outgoing edges is a
// bridge — in which case the non-bridge edge is preferred and the
// contig continues uninterrupted.
func (c *Collapser) traverse(start int, comp map[int]int) ([]string, error) {
	var contigs []string
	current := start
	sb, err := c.nodeKmer(current)
	if err != nil {
		return nil, err
	}

	for {
		n, err := c.g.OutDegree(current)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			contigs = append(contigs, sb)
			return contigs, nil
		}

		e, ok, err := c.g.FirstOutEdge(current)
		if err != nil {
			return nil, err
		}
		if !ok {
			contigs = append(contigs, sb)
			return contigs, nil
		}

		if n >= 2 {
			f, ok, err := c.g.NextOutEdge(e)
			if err != nil {
				return nil, err
			}
			if ok {
				eBridge, err := c.isBridge(e, comp)
				if err != nil {
					return nil, err
				}
				fBridge, err := c.isBridge(f, comp)
				if err != nil {
					return nil, err
				}

				if n == 2 && eBridge != fBridge {
					if eBridge {
						e = f
					}
				} else {
					contigs = append(contigs, sb)
					sb, err = c.nodeKmer(current)
					if err != nil {
						return nil, err
					}
					if c.cfg.doubleBridgePolicy == PreferSecond {
						e = f
					}
				}
			}
		}

		_, target, err := c.g.Endpoints(e)
		if err != nil {
			return nil, err
		}
		label, err := c.g.Label(e)
		if err != nil {
			return nil, err
		}
		seq, err := label.Bytes()
		if err != nil {
			return nil, err
		}
		// This slice covers both cases the source describes
		// separately: for an unshrunk (single k-mer) edge, len(seq)
		// is k1+1 and seq[k1:] is exactly the target's last base;
		// for a shrunk (merged) edge it is everything past the
		// leading (k-1)-mer overlap.
		sb += string(seq[c.k1:])

		w, err := c.g.Weight(e)
		if err != nil {
			return nil, err
		}
		if err := c.g.SetWeight(e, w-1); err != nil {
			return nil, err
		}

		current = target
	}
}

// isBridge reports whether edge e's endpoints fall in different
// strongly-connected components.
func (c *Collapser) isBridge(e int, comp map[int]int) (bool, error) {
	from, to, err := c.g.Endpoints(e)
	if err != nil {
		return false, err
	}

	return comp[from] != comp[to], nil
}

// nodeKmer recovers a node's own (k-1)-mer string from an incident
// edge's label: the prefix of an outgoing edge, or the suffix of an
// incoming edge when the node has no outgoing edge of its own.
func (c *Collapser) nodeKmer(n int) (string, error) {
	if e, ok, err := c.g.FirstOutEdge(n); err != nil {
		return "", err
	} else if ok {
		label, err := c.g.Label(e)
		if err != nil {
			return "", err
		}
		prefix, err := label.Prefix(c.k1)
		if err != nil {
			return "", err
		}
		return string(prefix), nil
	}

	if e, ok, err := c.g.FirstInEdge(n); err != nil {
		return "", err
	} else if ok {
		label, err := c.g.Label(e)
		if err != nil {
			return "", err
		}
		suffix, err := label.Suffix(c.k1)
		if err != nil {
			return "", err
		}
		return string(suffix), nil
	}

	return "", ErrDisconnectedNode
}
