// Package contigout writes the final contig set to the output file:
// one bare sequence of {A,C,G,T} per line.
package contigout
