// Package builder drives ingestion: it pulls records from a reader,
// threading each one's sequence and weight into a GIR under a single
// fixed k-mer size, optionally ingesting each record's reverse
// complement alongside its forward strand.
//
// This is the streaming counterpart of gir.IngestRead/IngestWeightedRead
// — builder owns the "pull records until exhausted" loop so that
// cmd/dbgasm and callers in tests never have to inline it themselves.
package builder
