package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbruijn/dbgasm/arena"
	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/nucl"
	"github.com/nbruijn/dbgasm/stats"
)

func label(t *testing.T, a *arena.Arena, seq string) arena.EdgeSlice {
	t.Helper()
	packed, err := nucl.CompressEdge([]byte(seq))
	require.NoError(t, err)

	return a.EdgeView(a.Push(packed))
}

func TestReport_CountsAndHistograms(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	g := graph.New(a.K1())
	n0, n1, n2 := g.AddNode(), g.AddNode(), g.AddNode()

	_, err = g.AddEdge(n0, n1, label(t, a, "ACGT"), 5)
	require.NoError(t, err)
	_, err = g.AddEdge(n1, n2, label(t, a, "CGTA"), 7)
	require.NoError(t, err)

	snap, err := stats.Report(g, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Nodes)
	assert.Equal(t, 2, snap.Edges)
	assert.Equal(t, int64(12), snap.TotalWeight)
	assert.Equal(t, 1, snap.OutDegreeHistogram[0], "n2 has out-degree 0")
	assert.Equal(t, 2, snap.OutDegreeHistogram[1], "n0 and n1 have out-degree 1")
	assert.Equal(t, 1, snap.InDegreeHistogram[0], "n0 has in-degree 0")
	assert.Equal(t, 2, snap.InDegreeHistogram[1], "n1 and n2 have in-degree 1")
}

func TestReport_NG50(t *testing.T) {
	snap, err := stats.Report(graph.New(1), []string{"AAAAAAAAAA", "CCCCC", "GG", "T"}, 20)
	require.NoError(t, err)

	assert.Equal(t, 4, snap.ContigCount)
	assert.Equal(t, 18, snap.TotalContigLength)
	assert.Equal(t, 10, snap.LongestContig)
	// sorted descending: 10,5,2,1; half of 20 is 10; cumulative
	// reaches 10 at the first contig itself.
	assert.Equal(t, 10, snap.NG50)
}

func TestReport_NG50_ZeroWithoutGenomeLength(t *testing.T) {
	snap, err := stats.Report(graph.New(1), []string{"AAAA"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.NG50)
}
