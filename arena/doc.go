// Package arena implements the sequence arena: a process-wide,
// append-only ordered container of packed byte slices, indexed by
// integer offset, that the rest of the pipeline (gir, graph, builder,
// shrink) addresses by index rather than by pointer.
//
// Index 0 is reserved scratch space used by gir during ingestion: a
// window is packed into slot 0 speculatively, looked up, and only
// promoted to a fresh, stable index if it turns out to name a new
// vertex. Every other index, once pushed, keeps its byte contents
// addressable for the arena's lifetime — "delete" means replacing an
// entry with an empty slice (see Clear), never shrinking the slice of
// entries, so that outstanding NodeSlice/EdgeSlice views never dangle.
//
// K (k-mer length) is fixed once at construction (New) and never
// changes; node-layout views need it to know how many symbols a
// packed blob decodes to, since the byte count alone is ambiguous
// (see nucl's doc comment). Edge-layout views are self-describing and
// do not need K.
//
// Concurrency: a single sync.RWMutex guards all reads and writes, per
// spec's "many readers, one exclusive writer" policy. No stage of the
// pipeline actually calls into the arena from more than one goroutine
// — mutation here satisfies Go's aliasing rules and gives tests a
// single choke point to serialize on, not a performance requirement.
package arena
