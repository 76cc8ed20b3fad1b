package standardize

import (
	"fmt"
	"math"

	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/prune"
)

// Standardizer rescales and smooths edge weights on a graph in place.
type Standardizer struct {
	g *graph.Graph
	k int
}

// New creates a Standardizer bound to g, using k (the full k-mer
// length) both as the per-edge coverage unit and as the step bound
// handed to the prune pass StandardizeEdges runs afterward.
func New(g *graph.Graph, k int) (*Standardizer, error) {
	if k <= 0 {
		return nil, fmt.Errorf("standardize: New(k=%d): %w", k, ErrNonPositiveK)
	}

	return &Standardizer{g: g, k: k}, nil
}

// StandardizeEdges rescales every edge weight toward the coverage
// implied by genomeLength: it computes a single scale factor from the
// ratio of expected to observed total coverage (excluding edges
// already below threshold, which would otherwise skew the estimate),
// applies it edge by edge with round-half-to-even-free rounding
// (clamping a rescaled weight that rounds to 0 back up to 1, but only
// for edges that weren't already weak), then removes anything left
// below a weight of 1.
func (s *Standardizer) StandardizeEdges(genomeLength int, threshold int64) error {
	edges := s.g.Edges()
	weights := make(map[int]int64, len(edges))

	var total, weak int64
	for _, e := range edges {
		w, err := s.g.Weight(e)
		if err != nil {
			return err
		}
		weights[e] = w
		total += w
		if w < threshold {
			weak += w
		}
	}

	denom := total - weak
	if denom == 0 {
		return ErrDegenerateCoverage
	}
	scale := float64(genomeLength-s.k) / float64(denom)

	for _, e := range edges {
		w := weights[e]
		rescaled := int64(math.Round(float64(w) * scale))
		if rescaled == 0 && w >= threshold {
			rescaled = 1
		}
		if err := s.g.SetWeight(e, rescaled); err != nil {
			return err
		}
	}

	p, err := prune.New(s.g, s.k)
	if err != nil {
		return err
	}

	return p.RemoveWeakEdges(1)
}

// StandardizeContigs smooths weight noise along linear runs. A node is
// ambiguous if it branches (in-degree > 1 or out-degree > 1) or is a
// source with no incoming edge. From every outgoing edge of every
// ambiguous node, it walks forward through non-ambiguous,
// single-in/single-out nodes, collecting the edge run up to and
// including the edge that arrives at the next ambiguous node (or a
// dead end), and sets every edge in that run to the run's integer
// mean weight.
func (s *Standardizer) StandardizeContigs() error {
	ambiguous := make(map[int]bool)
	for _, n := range s.g.Nodes() {
		in, err := s.g.InDegree(n)
		if err != nil {
			return err
		}
		out, err := s.g.OutDegree(n)
		if err != nil {
			return err
		}
		if in > 1 || out > 1 || (in == 0 && out >= 1) {
			ambiguous[n] = true
		}
	}

	for n := range ambiguous {
		outs, err := s.g.OutEdges(n)
		if err != nil {
			return err
		}
		for _, e := range outs {
			run, err := s.walkContig(e)
			if err != nil {
				return err
			}
			if err := s.setRunToMean(run); err != nil {
				return err
			}
		}
	}

	return nil
}

// walkContig follows start forward through a chain of plain
// in-degree-1/out-degree-1 nodes, stopping once it arrives at a node
// that branches, merges, or has no further outgoing edge. The edge
// that arrives at that stopping node is included in the run.
func (s *Standardizer) walkContig(start int) ([]int, error) {
	run := []int{start}

	_, cur, err := s.g.Endpoints(start)
	if err != nil {
		return nil, err
	}

	for {
		in, err := s.g.InDegree(cur)
		if err != nil {
			return nil, err
		}
		out, err := s.g.OutDegree(cur)
		if err != nil {
			return nil, err
		}
		if in != 1 || out != 1 {
			return run, nil
		}

		next, ok, err := s.g.FirstOutEdge(cur)
		if err != nil {
			return nil, err
		}
		if !ok {
			return run, nil
		}
		run = append(run, next)

		_, cur, err = s.g.Endpoints(next)
		if err != nil {
			return nil, err
		}
	}
}

// setRunToMean assigns every edge in run the run's integer mean
// weight.
func (s *Standardizer) setRunToMean(run []int) error {
	var sum int64
	for _, e := range run {
		w, err := s.g.Weight(e)
		if err != nil {
			return err
		}
		sum += w
	}
	mean := sum / int64(len(run))

	for _, e := range run {
		if err := s.g.SetWeight(e, mean); err != nil {
			return err
		}
	}

	return nil
}
