package stats

import (
	"sort"

	"github.com/nbruijn/dbgasm/graph"
)

// Snapshot is a point-in-time report over a graph and, once it
// exists, the set of contigs collapsed from it.
type Snapshot struct {
	Nodes       int
	Edges       int
	TotalWeight int64

	// OutDegreeHistogram and InDegreeHistogram map a degree value to
	// the number of nodes carrying it.
	OutDegreeHistogram map[int]int
	InDegreeHistogram  map[int]int

	ContigCount        int
	TotalContigLength  int
	LongestContig      int
	// NG50 is the length of the shortest contig in the
	// longest-first prefix whose cumulative length first reaches
	// half of the reference genome length. It is 0 when no genome
	// length is known (genomeLength <= 0) or no contigs were given.
	NG50 int
}

// Report builds a Snapshot over g's current state and, if contigs is
// non-empty, over the given contig set. genomeLength is the expected
// reference length used for NG50; pass 0 if unknown.
func Report(g *graph.Graph, contigs []string, genomeLength int) (Snapshot, error) {
	snap := Snapshot{
		Nodes:              g.NodeCount(),
		Edges:              g.EdgeCount(),
		OutDegreeHistogram: make(map[int]int),
		InDegreeHistogram:  make(map[int]int),
	}

	for _, n := range g.Nodes() {
		out, err := g.OutDegree(n)
		if err != nil {
			return Snapshot{}, err
		}
		in, err := g.InDegree(n)
		if err != nil {
			return Snapshot{}, err
		}
		snap.OutDegreeHistogram[out]++
		snap.InDegreeHistogram[in]++
	}

	for _, e := range g.Edges() {
		w, err := g.Weight(e)
		if err != nil {
			return Snapshot{}, err
		}
		snap.TotalWeight += w
	}

	snap.ContigCount = len(contigs)
	lengths := make([]int, len(contigs))
	for i, c := range contigs {
		lengths[i] = len(c)
		snap.TotalContigLength += len(c)
		if len(c) > snap.LongestContig {
			snap.LongestContig = len(c)
		}
	}

	snap.NG50 = ng50(lengths, genomeLength)

	return snap, nil
}

// ng50 returns the NG50 contiguity statistic: sort lengths
// descending, and return the length of the first contig whose
// cumulative running total reaches half of genomeLength.
func ng50(lengths []int, genomeLength int) int {
	if genomeLength <= 0 || len(lengths) == 0 {
		return 0
	}

	sorted := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	half := genomeLength / 2
	var cumulative int
	for _, l := range sorted {
		cumulative += l
		if cumulative >= half {
			return l
		}
	}

	return 0
}
