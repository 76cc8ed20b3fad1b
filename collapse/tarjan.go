package collapse

import "github.com/nbruijn/dbgasm/graph"

// tarjan computes strongly-connected-component membership for every
// node of g via Tarjan's path-based algorithm, in the same
// recursive-DFS idiom as the rest of the traversal packages in this
// module.
type tarjan struct {
	g       *graph.Graph
	index   map[int]int
	low     map[int]int
	onStack map[int]bool
	stack   []int
	next    int
	comp    map[int]int
	compCtr int
}

func componentsOf(g *graph.Graph) (map[int]int, error) {
	t := &tarjan{
		g:       g,
		index:   make(map[int]int),
		low:     make(map[int]int),
		onStack: make(map[int]bool),
		comp:    make(map[int]int),
	}

	for _, n := range g.Nodes() {
		if _, seen := t.index[n]; !seen {
			if err := t.strongConnect(n); err != nil {
				return nil, err
			}
		}
	}

	return t.comp, nil
}

func (t *tarjan) strongConnect(v int) error {
	t.index[v] = t.next
	t.low[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	outs, err := t.g.OutEdges(v)
	if err != nil {
		return err
	}
	for _, e := range outs {
		_, w, err := t.g.Endpoints(e)
		if err != nil {
			return err
		}
		if _, seen := t.index[w]; !seen {
			if err := t.strongConnect(w); err != nil {
				return err
			}
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.low[v] {
				t.low[v] = t.index[w]
			}
		}
	}

	if t.low[v] == t.index[v] {
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			t.comp[w] = t.compCtr
			if w == v {
				break
			}
		}
		t.compCtr++
	}

	return nil
}
