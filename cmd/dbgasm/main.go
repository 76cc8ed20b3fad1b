// Command dbgasm assembles contigs from a FASTA, FASTQ, or BFCounter
// read file with a de Bruijn graph and writes them to an output file,
// one contig per line.
package main

import (
	"flag"
	"fmt"
	"log"

	dbgasm "github.com/nbruijn/dbgasm"
	"github.com/nbruijn/dbgasm/config"
)

func main() {
	inputPath := flag.String("input", "", "path to the read file")
	outputPath := flag.String("output", "", "path to write contigs to")
	fileType := flag.String("format", "fasta", "input format: fasta, fastq, or bfcounter")
	k := flag.Int("k", 0, "k-mer size")
	genomeLength := flag.Int("genome-length", 0, "expected reference genome length, used for coverage standardization and NG50")
	threshold := flag.Int64("weight-threshold", 1, "minimum edge weight to keep during pruning and standardization")
	reverseComplement := flag.Bool("rc", false, "also ingest each read's reverse complement")
	flag.Parse()

	ft, err := parseFileType(*fileType)
	if err != nil {
		log.Fatalf("dbgasm: %v", err)
	}

	cfg, err := config.New(
		config.WithInputPath(*inputPath),
		config.WithInputFileType(ft),
		config.WithOutputPath(*outputPath),
		config.WithKMerSize(*k),
		config.WithOriginalGenomeLength(*genomeLength),
		config.WithMinimalWeightThreshold(*threshold),
		config.WithReverseComplement(*reverseComplement),
	)
	if err != nil {
		log.Fatalf("dbgasm: %v", err)
	}

	result, err := dbgasm.Assemble(cfg)
	if err != nil {
		log.Fatalf("dbgasm: %v", err)
	}

	log.Printf("assembled %d contigs (%d nodes, %d edges left, NG50=%d)",
		result.Stats.ContigCount, result.Stats.Nodes, result.Stats.Edges, result.Stats.NG50)
}

func parseFileType(s string) (config.FileType, error) {
	switch s {
	case "fasta":
		return config.Fasta, nil
	case "fastq":
		return config.Fastq, nil
	case "bfcounter":
		return config.BFCounter, nil
	default:
		return 0, fmt.Errorf("unrecognized -format %q (want fasta, fastq, or bfcounter)", s)
	}
}
