package prune

import "errors"

// ErrNonPositiveK indicates New was given a k <= 0; the dead-path walk
// bound (2*K steps) would otherwise be meaningless.
var ErrNonPositiveK = errors.New("prune: k must be positive")
