package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbruijn/dbgasm/arena"
	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/nucl"
)

func edgeLabel(t *testing.T, a *arena.Arena, seq string) arena.EdgeSlice {
	t.Helper()
	packed, err := nucl.CompressEdge([]byte(seq))
	require.NoError(t, err)
	idx := a.Push(packed)

	return a.EdgeView(idx)
}

func TestAddNodeAddEdge(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())

	n0 := g.AddNode()
	n1 := g.AddNode()
	assert.Equal(t, 2, g.NodeCount())

	eidx, err := g.AddEdge(n0, n1, edgeLabel(t, a, "ACGT"), 3)
	require.NoError(t, err)

	from, to, err := g.Endpoints(eidx)
	require.NoError(t, err)
	assert.Equal(t, n0, from)
	assert.Equal(t, n1, to)

	w, err := g.Weight(eidx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), w)

	outDeg, err := g.OutDegree(n0)
	require.NoError(t, err)
	assert.Equal(t, 1, outDeg)

	inDeg, err := g.InDegree(n1)
	require.NoError(t, err)
	assert.Equal(t, 1, inDeg)
}

func TestAddEdge_RejectsNonPositiveWeight(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	n0, n1 := g.AddNode(), g.AddNode()

	_, err = g.AddEdge(n0, n1, edgeLabel(t, a, "ACGT"), 0)
	require.ErrorIs(t, err, graph.ErrNonPositiveWeight)
}

func TestOutEdges_InsertionOrder(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	src := g.AddNode()
	t1, t2, t3 := g.AddNode(), g.AddNode(), g.AddNode()

	e1, err := g.AddEdge(src, t1, edgeLabel(t, a, "ACGA"), 1)
	require.NoError(t, err)
	e2, err := g.AddEdge(src, t2, edgeLabel(t, a, "ACGC"), 1)
	require.NoError(t, err)
	e3, err := g.AddEdge(src, t3, edgeLabel(t, a, "ACGG"), 1)
	require.NoError(t, err)

	got, err := g.OutEdges(src)
	require.NoError(t, err)
	assert.Equal(t, []int{e1, e2, e3}, got)
}

func TestRemoveEdge_UnlinksFromBothChains(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	src := g.AddNode()
	t1, t2 := g.AddNode(), g.AddNode()

	e1, err := g.AddEdge(src, t1, edgeLabel(t, a, "ACGA"), 1)
	require.NoError(t, err)
	e2, err := g.AddEdge(src, t2, edgeLabel(t, a, "ACGC"), 1)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e1))

	got, err := g.OutEdges(src)
	require.NoError(t, err)
	assert.Equal(t, []int{e2}, got)

	inDeg, err := g.InDegree(t1)
	require.NoError(t, err)
	assert.Equal(t, 0, inDeg)

	assert.Equal(t, 1, g.EdgeCount())
}

func TestSetWeight_ZeroRemovesEdge(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	n0, n1 := g.AddNode(), g.AddNode()
	eidx, err := g.AddEdge(n0, n1, edgeLabel(t, a, "ACGT"), 2)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(eidx, 0))
	_, err = g.Weight(eidx)
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestRemoveNode_RejectsWithIncidentEdges(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	n0, n1 := g.AddNode(), g.AddNode()
	_, err = g.AddEdge(n0, n1, edgeLabel(t, a, "ACGT"), 1)
	require.NoError(t, err)

	err = g.RemoveNode(n0)
	require.ErrorIs(t, err, graph.ErrNodeHasIncidentEdges)
}

func TestExternals(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	source := g.AddNode()
	middle := g.AddNode()
	sink := g.AddNode()
	_, err = g.AddEdge(source, middle, edgeLabel(t, a, "ACGT"), 1)
	require.NoError(t, err)
	_, err = g.AddEdge(middle, sink, edgeLabel(t, a, "CGTA"), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{source}, g.Externals(graph.In))
	assert.Equal(t, []int{sink}, g.Externals(graph.Out))
}
