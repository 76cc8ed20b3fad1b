// Package stats reports plain, format-agnostic snapshots of graph and
// assembly state: node/edge counts, total edge weight, degree
// histograms, and an NG50-style contiguity statistic computed from
// final contig lengths against a known reference genome length. It
// performs no I/O and no formatting; callers decide how to print a
// Snapshot.
package stats
