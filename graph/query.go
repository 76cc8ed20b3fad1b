package graph

// OutEdges returns every live outgoing edge of node idx, in insertion
// order. It is a convenience wrapper around FirstOutEdge/NextOutEdge
// for callers that want the whole adjacency at once (the shrinker's
// DFS, the collapser's SCC pass, the pruner's node deletion).
func (g *Graph) OutEdges(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(idx); err != nil {
		return nil, err
	}

	var out []int
	for e := g.nodes[idx].firstOut; e != -1; e = g.edges[e].nextOut {
		out = append(out, e)
	}

	return out, nil
}

// InEdges returns every live incoming edge of node idx, in insertion
// order.
func (g *Graph) InEdges(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(idx); err != nil {
		return nil, err
	}

	var in []int
	for e := g.nodes[idx].firstIn; e != -1; e = g.edges[e].nextIn {
		in = append(in, e)
	}

	return in, nil
}
