// Package nucl implements the nucleotide codec: packing and unpacking
// strings over the strict {A,C,G,T} alphabet into a 2-bit-per-symbol
// representation, and the handful of in-place edits the de Bruijn
// pipeline needs on already-packed bytes.
//
// Three layouts exist, matching the three ways a sequence is stored in
// the arena:
//
//	node layout:  a single (k-1)-mer, MSB-first, left-justified in its
//	              final byte. The caller must remember the symbol count
//	              (K1) to decode it — the byte slice alone is ambiguous
//	              for any n in {4m+1,...,4m+4}.
//	kmer layout:  two adjacent node-layout blocks (the k-mer's prefix
//	              and suffix (k-1)-mers), concatenated with no shared
//	              padding byte.
//	edge layout:  one leading padding byte (0..3, the number of unused
//	              2-bit slots in the final payload byte) followed by a
//	              node-layout payload. Unlike node layout, edge layout
//	              is self-describing: its length is recoverable from
//	              len(payload)*4 - padding, so no external K is needed
//	              to decode it.
//
// All functions are pure: they take byte slices and return new byte
// slices (or in the case of last_char a single byte); none of them
// touch the arena. The arena package calls these to materialize and
// mutate entries.
package nucl
