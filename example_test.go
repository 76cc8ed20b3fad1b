package dbgasm_test

import (
	"fmt"
	"os"
	"path/filepath"

	dbgasm "github.com/nbruijn/dbgasm"
	"github.com/nbruijn/dbgasm/config"
)

// Example assembles a single read back into itself: with only one
// read, the de Bruijn graph it induces has no branches to resolve, so
// the whole thing shrinks and collapses into one contig identical to
// the input.
func Example() {
	dir, err := os.MkdirTemp("", "dbgasm-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "reads.fasta")
	out := filepath.Join(dir, "contigs.txt")
	if err := os.WriteFile(in, []byte(">r1\nACGTAC\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	cfg, err := config.New(
		config.WithInputPath(in),
		config.WithInputFileType(config.Fasta),
		config.WithOutputPath(out),
		config.WithKMerSize(3),
		config.WithOriginalGenomeLength(6),
		config.WithMinimalWeightThreshold(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := dbgasm.Assemble(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range result.Contigs {
		fmt.Println(c)
	}
	// Output:
	// ACGTAC
}
