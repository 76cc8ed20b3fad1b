package config

import "errors"

// ErrMissingInputPath indicates New was not given an input path.
var ErrMissingInputPath = errors.New("config: input_path is required")

// ErrMissingOutputPath indicates New was not given an output path.
var ErrMissingOutputPath = errors.New("config: output_path is required")

// ErrKTooSmall indicates New was given a k-mer size below the
// minimum of 3 a de Bruijn graph needs to have a meaningful
// (k-1)-mer on each side of an edge.
var ErrKTooSmall = errors.New("config: k_mer_size must be at least 3")

// ErrUnknownFileType indicates New was given an input_file_type
// outside {Fasta, Fastq, BFCounter}.
var ErrUnknownFileType = errors.New("config: unrecognized input_file_type")
