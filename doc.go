// Package dbgasm assembles contigs from short reads with a de Bruijn
// graph: it packs every read into a fixed-K-mer graph, cleans weak
// and dead structure out of it, rescales edge and contig coverage
// toward an expected value, contracts every linear chain into a
// single edge, and walks what remains into a final contig set.
//
// Assemble wires the whole pipeline end to end — reader, builder,
// gir, graph, prune, standardize, shrink, collapse, contigout, and
// stats — from a single config.Config. cmd/dbgasm is the thin CLI
// front end over it.
package dbgasm
