// Package standardize rescales edge weights toward an expected
// coverage derived from a reference genome length, and separately
// smooths weights along contigs so that a single sequencing error in
// the middle of an otherwise uniformly-covered path doesn't leave a
// visible dip or spike.
package standardize
