package arena

import "errors"

// Sentinel errors for the arena package.
var (
	// ErrKTooSmall indicates New was called with k < 3, violating the
	// global "K >= 3" invariant.
	ErrKTooSmall = errors.New("arena: k must be >= 3")

	// ErrIndexOutOfRange indicates Read/Write/Clear addressed an index
	// outside [0, Len()). This is an internal invariant violation: a
	// well-formed pipeline never constructs a NodeSlice/EdgeSlice whose
	// index exceeds the arena it was built from.
	ErrIndexOutOfRange = errors.New("arena: index out of range")

	// ErrBadTruncateTarget indicates Truncate was asked to grow the
	// arena or to drop the reserved scratch slot 0.
	ErrBadTruncateTarget = errors.New("arena: truncate target must be in (0, Len()]")
)
