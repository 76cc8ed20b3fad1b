package dbgasm

import (
	"fmt"
	"os"

	"github.com/nbruijn/dbgasm/arena"
	"github.com/nbruijn/dbgasm/builder"
	"github.com/nbruijn/dbgasm/collapse"
	"github.com/nbruijn/dbgasm/config"
	"github.com/nbruijn/dbgasm/contigout"
	"github.com/nbruijn/dbgasm/gir"
	"github.com/nbruijn/dbgasm/graph"
	"github.com/nbruijn/dbgasm/prune"
	"github.com/nbruijn/dbgasm/reader"
	"github.com/nbruijn/dbgasm/shrink"
	"github.com/nbruijn/dbgasm/standardize"
	"github.com/nbruijn/dbgasm/stats"
)

// Result is what one assembly run produced: the final contig set and
// a snapshot of the graph/contig statistics at the end of the run.
type Result struct {
	Contigs []string
	Stats   stats.Snapshot
}

// Assemble runs the full pipeline described by cfg: it reads cfg.InputPath
// in cfg.InputFileType, builds a de Bruijn graph at cfg.KMerSize, cleans
// and standardizes it, contracts linear chains, collapses what remains
// into contigs, and writes them one per line to cfg.OutputPath.
func Assemble(cfg *config.Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: opening input: %w", err)
	}
	defer in.Close()

	a, err := arena.New(cfg.KMerSize)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}
	g := gir.New(a)

	r, err := reader.New(in, cfg.InputFileType, cfg.KMerSize)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}
	b, err := builder.New(r, g, builder.WithReverseComplement(cfg.ReverseComplement))
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}
	if _, err := b.Build(); err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: ingesting reads: %w", err)
	}

	gr, err := g.ToGraph(cfg.KMerSize)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: converting to graph: %w", err)
	}

	if err := cleanGraph(gr, cfg.KMerSize, cfg.MinimalWeightThreshold); err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: pruning: %w", err)
	}

	std, err := standardize.New(gr, cfg.KMerSize)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}
	// StandardizeEdges derives its scale factor from genomeLength-k; an
	// unset or too-small genome length (the CLI's zero-value default
	// when -genome-length is omitted) makes that factor zero or
	// negative and would rescale every edge weight to 0, wiping the
	// whole graph. Run it only when genomeLength gives a meaningful
	// coverage estimate.
	if cfg.OriginalGenomeLength > cfg.KMerSize {
		if err := std.StandardizeEdges(cfg.OriginalGenomeLength, cfg.MinimalWeightThreshold); err != nil {
			return Result{}, fmt.Errorf("dbgasm: Assemble: standardizing edges: %w", err)
		}

		if err := cleanGraph(gr, cfg.KMerSize, cfg.MinimalWeightThreshold); err != nil {
			return Result{}, fmt.Errorf("dbgasm: Assemble: re-pruning: %w", err)
		}
	}

	if err := std.StandardizeContigs(); err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: standardizing contigs: %w", err)
	}

	shr, err := shrink.New(gr, a)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}
	if err := shr.Shrink(); err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: shrinking: %w", err)
	}

	col, err := collapse.New(gr)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: %w", err)
	}
	contigs, err := col.Collapse()
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: collapsing: %w", err)
	}

	snap, err := stats.Report(gr, contigs, cfg.OriginalGenomeLength)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: reporting stats: %w", err)
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: opening output: %w", err)
	}
	defer out.Close()
	if err := contigout.Write(out, contigs); err != nil {
		return Result{}, fmt.Errorf("dbgasm: Assemble: writing contigs: %w", err)
	}

	return Result{Contigs: contigs, Stats: snap}, nil
}

// cleanGraph runs one pass of edge, node, and dead-path pruning — the
// sequence the pipeline runs once before standardization and, when
// StandardizeEdges runs, once more after it.
func cleanGraph(gr *graph.Graph, k int, threshold int64) error {
	p, err := prune.New(gr, k)
	if err != nil {
		return err
	}
	if err := p.RemoveWeakEdges(threshold); err != nil {
		return err
	}
	if err := p.RemoveIsolatedNodes(); err != nil {
		return err
	}

	return p.RemoveDeadPaths()
}
