// Package reader scans FASTA, FASTQ, and BFCounter input files,
// yielding one Record per read (or per k-mer count line). It rejects,
// as fatal errors rather than silently skipping, any record shorter
// than the run's fixed k-mer size or containing a base outside
// {A,C,G,T}.
package reader
