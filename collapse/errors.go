package collapse

import "errors"

// ErrNilGraph indicates New was given a nil graph.
var ErrNilGraph = errors.New("collapse: graph must be non-nil")

// ErrDisconnectedNode indicates a node had neither an outgoing nor an
// incoming edge to recover its own (k-1)-mer identity from; this
// should never happen on a graph that has already been pruned of
// isolated nodes.
var ErrDisconnectedNode = errors.New("collapse: node has no incident edge to recover identity from")
