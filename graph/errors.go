package graph

import "errors"

// Sentinel errors for the graph package.
var (
	// ErrNodeNotFound indicates an operation referenced a node index
	// that is either out of range or has already been removed.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge index
	// that is either out of range or has already been removed.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNodeHasIncidentEdges indicates RemoveNode was called on a node
	// that still has outgoing or incoming edges. The caller must remove
	// every incident edge first; Graph never cascades deletes so that
	// the cleanup pipeline stays in full control of ordering.
	ErrNodeHasIncidentEdges = errors.New("graph: node still has incident edges")

	// ErrNonPositiveWeight indicates AddEdge was given a weight <= 0.
	// SetWeight never returns it: a weight <= 0 there removes the edge
	// instead of storing it, per the graph's "no zero-weight edges"
	// invariant.
	ErrNonPositiveWeight = errors.New("graph: weight must be positive")
)
