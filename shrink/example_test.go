package shrink_test

import (
	"fmt"

	"github.com/nbruijn/dbgasm/arena"
	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/nucl"
	"github.com/nbruijn/dbgasm/shrink"
)

// Example contracts a two-edge chain into a single edge spanning
// the source and sink.
func Example() {
	a, err := arena.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := graph.New(a.K1())
	n0, n1, n2 := g.AddNode(), g.AddNode(), g.AddNode()

	edge := func(seq string) arena.EdgeSlice {
		packed, err := nucl.CompressEdge([]byte(seq))
		if err != nil {
			panic(err)
		}
		return a.EdgeView(a.Push(packed))
	}

	if _, err := g.AddEdge(n0, n1, edge("ACGT"), 1); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddEdge(n1, n2, edge("CGTA"), 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := shrink.New(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := s.Shrink(); err != nil {
		fmt.Println("error:", err)
		return
	}

	label, err := g.Label(g.Edges()[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seq, err := label.Bytes()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount(), string(seq))
	// Output: 2 1 ACGTA
}
