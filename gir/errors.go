package gir

import "errors"

// Sentinel errors for the gir package.
var (
	// ErrReadTooShort indicates IngestRead was handed a read shorter
	// than the arena's fixed k-mer length; it contributes no windows.
	ErrReadTooShort = errors.New("gir: read shorter than k")

	// ErrVertexNotFound indicates an internal lookup addressed a
	// vertex index outside the set built so far.
	ErrVertexNotFound = errors.New("gir: vertex index not found")

	// ErrNonPositiveWeight indicates IngestWeightedRead was handed a
	// weight that cannot contribute any occurrences.
	ErrNonPositiveWeight = errors.New("gir: non-positive weight")
)
