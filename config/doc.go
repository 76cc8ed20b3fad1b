// Package config holds the run-time settings for one assembly pipeline
// invocation: input/output paths, the input file format, the fixed
// k-mer size, the weak-edge threshold, the expected reference genome
// length, and whether to also ingest reverse complements. A Config is
// built once via functional options and threaded explicitly through
// every stage that needs it (K above all) rather than read from a
// package-level variable.
package config
