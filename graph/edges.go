package graph

import "github.com/nbruijn/dbgasm/arena"

// AddEdge appends a new edge from -> to carrying label and weight,
// and links it to the tail of both endpoints' adjacency chains so
// that FirstOutEdge/NextOutEdge (and the In equivalents) enumerate
// edges in the order they were added — the order gir observed
// transitions in, which the conversion step and the collapser's
// tie-breaking both rely on.
func (g *Graph) AddEdge(from, to int, label arena.EdgeSlice, weight int64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if weight <= 0 {
		return 0, ErrNonPositiveWeight
	}
	if err := g.checkNode(from); err != nil {
		return 0, err
	}
	if err := g.checkNode(to); err != nil {
		return 0, err
	}

	idx := len(g.edges)
	g.edges = append(g.edges, edgeRecord{
		from: from, to: to, label: label, weight: weight,
		nextOut: -1, prevOut: g.nodes[from].lastOut,
		nextIn: -1, prevIn: g.nodes[to].lastIn,
	})

	src := &g.nodes[from]
	if src.lastOut == -1 {
		src.firstOut = idx
	} else {
		g.edges[src.lastOut].nextOut = idx
	}
	src.lastOut = idx
	src.outDeg++

	dst := &g.nodes[to]
	if dst.lastIn == -1 {
		dst.firstIn = idx
	} else {
		g.edges[dst.lastIn].nextIn = idx
	}
	dst.lastIn = idx
	dst.inDeg++

	g.liveEdges++

	return idx, nil
}

// RemoveEdge unlinks and tombstones an edge.
func (g *Graph) RemoveEdge(idx int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(idx)
}

func (g *Graph) removeEdgeLocked(idx int) error {
	if err := g.checkEdge(idx); err != nil {
		return err
	}
	e := &g.edges[idx]

	src := &g.nodes[e.from]
	if e.prevOut == -1 {
		src.firstOut = e.nextOut
	} else {
		g.edges[e.prevOut].nextOut = e.nextOut
	}
	if e.nextOut == -1 {
		src.lastOut = e.prevOut
	} else {
		g.edges[e.nextOut].prevOut = e.prevOut
	}
	src.outDeg--

	dst := &g.nodes[e.to]
	if e.prevIn == -1 {
		dst.firstIn = e.nextIn
	} else {
		g.edges[e.prevIn].nextIn = e.nextIn
	}
	if e.nextIn == -1 {
		dst.lastIn = e.prevIn
	} else {
		g.edges[e.nextIn].prevIn = e.prevIn
	}
	dst.inDeg--

	e.removed = true
	g.liveEdges--

	return nil
}

// SetWeight updates an edge's weight. A non-positive weight removes
// the edge outright, matching the "weight reaching zero deletes the
// edge" invariant standardization and pruning both rely on.
func (g *Graph) SetWeight(idx int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if w <= 0 {
		return g.removeEdgeLocked(idx)
	}
	if err := g.checkEdge(idx); err != nil {
		return err
	}
	g.edges[idx].weight = w

	return nil
}

// Weight returns an edge's current weight.
func (g *Graph) Weight(idx int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEdge(idx); err != nil {
		return 0, err
	}

	return g.edges[idx].weight, nil
}

// Label returns an edge's EdgeSlice, the arena-backed view of its
// base-sequence label.
func (g *Graph) Label(idx int) (arena.EdgeSlice, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEdge(idx); err != nil {
		return arena.EdgeSlice{}, err
	}

	return g.edges[idx].label, nil
}

// SetLabel replaces an edge's label, used after the shrinker merges a
// chain of edges into one longer label via nucl.ExtendEdge.
func (g *Graph) SetLabel(idx int, label arena.EdgeSlice) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(idx); err != nil {
		return err
	}
	g.edges[idx].label = label

	return nil
}

// Endpoints returns an edge's (from, to) node indices.
func (g *Graph) Endpoints(idx int) (from, to int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEdge(idx); err != nil {
		return 0, 0, err
	}
	e := g.edges[idx]

	return e.from, e.to, nil
}

// EdgeCount returns the number of live (non-removed) edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.liveEdges
}

// Edges returns the indices of every live edge, in ascending order.
func (g *Graph) Edges() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.liveEdges)
	for i, e := range g.edges {
		if !e.removed {
			out = append(out, i)
		}
	}

	return out
}

// FirstOutEdge returns the first outgoing edge of node idx, in
// insertion order, and ok=false if it has none.
func (g *Graph) FirstOutEdge(idx int) (edge int, ok bool, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(idx); err != nil {
		return 0, false, err
	}
	f := g.nodes[idx].firstOut

	return f, f != -1, nil
}

// NextOutEdge returns the sibling outgoing edge that follows edge idx
// at its source node, and ok=false if idx was the last one.
func (g *Graph) NextOutEdge(idx int) (edge int, ok bool, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEdge(idx); err != nil {
		return 0, false, err
	}
	n := g.edges[idx].nextOut

	return n, n != -1, nil
}

// FirstInEdge returns the first incoming edge of node idx, in
// insertion order, and ok=false if it has none.
func (g *Graph) FirstInEdge(idx int) (edge int, ok bool, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(idx); err != nil {
		return 0, false, err
	}
	f := g.nodes[idx].firstIn

	return f, f != -1, nil
}

// NextInEdge returns the sibling incoming edge that follows edge idx
// at its target node, and ok=false if idx was the last one.
func (g *Graph) NextInEdge(idx int) (edge int, ok bool, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEdge(idx); err != nil {
		return 0, false, err
	}
	n := g.edges[idx].nextIn

	return n, n != -1, nil
}

func (g *Graph) checkEdge(idx int) error {
	if idx < 0 || idx >= len(g.edges) || g.edges[idx].removed {
		return ErrEdgeNotFound
	}

	return nil
}
