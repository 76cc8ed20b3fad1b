// Package gir builds the graph intermediate representation: a
// hash-indexed set of (k-1)-mer vertices, each carrying an adjacency
// list of (target, weight, last-base) triples, assembled by sliding a
// length-K window across every ingested read.
//
// Ingestion packs each window into the arena's reserved scratch slot
// as a kmer-layout blob, looks its two (k-1)-mer halves up by decoded
// bytes (not by arena offset — two different offsets may decode to
// the same vertex), and either reuses an existing vertex or commits
// the scratch bytes to a fresh arena entry. A vertex discovered for
// the first time as a window's source can supply its own second half
// as the window's target without a second arena push, since the
// scratch bytes were already copied whole; GIR.getOrCreateTarget
// exploits this to avoid doubling allocations on the common case of a
// read with no branches.
//
// GIR is a transient structure: once ingestion finishes, ToGraph
// converts it into a graph.Graph with stable node/edge indices for
// the cleanup pipeline, and the GIR itself is discarded.
package gir
