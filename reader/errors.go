package reader

import "errors"

// ErrNonPositiveK indicates New was given a k <= 0.
var ErrNonPositiveK = errors.New("reader: k must be positive")

// ErrUnknownFileType indicates a Reader was constructed with a
// config.FileType outside {Fasta, Fastq, BFCounter}.
var ErrUnknownFileType = errors.New("reader: unrecognized file type")

// ErrMalformedRecord indicates the input ended mid-record, or a
// BFCounter line was missing its tab-separated count.
var ErrMalformedRecord = errors.New("reader: malformed record")

// ErrReadTooShort indicates a record's sequence is shorter than K.
var ErrReadTooShort = errors.New("reader: read shorter than k")

// ErrInvalidAlphabet indicates a record's sequence contains a byte
// outside {A,C,G,T}.
var ErrInvalidAlphabet = errors.New("reader: sequence outside {A,C,G,T}")
