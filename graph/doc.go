// Package graph implements the indexed de Bruijn graph: a directed
// multigraph with stable integer node and edge indices, suitable for
// the repeated mutation the cleanup pipeline performs (tip pruning,
// weak-edge removal, linear-path shrinking, Eulerian collapse).
//
// Unlike lvlath's map-keyed core.Graph (this repo's teacher package),
// nodes and edges here live in flat, index-addressed slices with
// tombstones, because the pipeline is handed concrete integer
// vertex/edge positions straight out of gir.GIR and the arena, and
// needs "first outgoing edge" / "next outgoing edge" sibling
// iteration rather than map iteration. Each node keeps the head and
// tail of a doubly linked list of its outgoing edges (and,
// symmetrically, its incoming edges); each edge keeps "next" and
// "prev" pointers into both chains.
// Removing a node or edge clears its slot but never shifts another
// entry's index, matching the arena's own "never shrink, only clear"
// discipline so that EdgeSlice labels stay valid until explicitly
// dropped.
//
// Concurrency follows the teacher's RWMutex-guarded style (see
// core/types.go): a single mutex protects the node/edge slices. The
// pipeline is single-threaded per spec's concurrency model; the lock
// exists for the same reason the arena's does — sound aliasing, not
// throughput.
package graph
