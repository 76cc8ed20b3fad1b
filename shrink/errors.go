package shrink

import "errors"

// ErrNilGraphOrArena indicates New was given a nil graph or arena.
var ErrNilGraphOrArena = errors.New("shrink: graph and arena must be non-nil")
