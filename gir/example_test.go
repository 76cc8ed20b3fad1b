package gir_test

import (
	"fmt"

	"github.com/nbruijn/dbgasm/arena"
	"github.com/nbruijn/dbgasm/gir"
)

// Example ingests a single short read and converts the result into a
// graph, printing the decoded label of its only edge.
func Example() {
	a, err := arena.New(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := gir.New(a)
	if err := g.IngestRead([]byte("ACGT"), false); err != nil {
		fmt.Println("error:", err)
		return
	}

	gr, err := g.ToGraph(a.K())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	e, ok, err := gr.FirstOutEdge(0)
	if err != nil || !ok {
		fmt.Println("error:", err)
		return
	}
	label, err := gr.Label(e)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, err := label.String()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output: ACGT
}
