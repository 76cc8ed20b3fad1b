package nucl

import "errors"

// Sentinel errors for the nucl package. Callers branch with errors.Is;
// these are never wrapped with formatted strings at the definition site.
var (
	// ErrInvalidAlphabet indicates a byte outside {A,C,G,T} was supplied
	// to a compression routine. Per spec this is always fatal upstream.
	ErrInvalidAlphabet = errors.New("nucl: byte outside {A,C,G,T} alphabet")

	// ErrSequenceTooShort indicates compress_edge was called with a
	// sequence shorter than 3 bases.
	ErrSequenceTooShort = errors.New("nucl: edge sequence shorter than 3 bases")

	// ErrTruncatedInput indicates a packed byte slice is too short to
	// hold the number of symbols the caller asked to decode.
	ErrTruncatedInput = errors.New("nucl: packed bytes truncated for requested length")

	// ErrBadPadding indicates an edge-layout leading byte holds a value
	// outside 0..3, so the blob cannot be a well-formed edge.
	ErrBadPadding = errors.New("nucl: edge padding byte out of range")

	// ErrEmptyEdge indicates an edge-layout byte slice has no leading
	// padding byte at all (len < 1).
	ErrEmptyEdge = errors.New("nucl: edge bytes missing padding header")
)
