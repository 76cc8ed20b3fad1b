package arena

import (
	"fmt"
	"sync"
)

// Arena is a process-wide, append-only ordered store of packed byte
// slices. Index 0 is reserved scratch space; see the package doc.
//
// Arena is safe for concurrent use: mu is a single reader/writer lock
// guarding entries, matching the "many readers, one exclusive writer"
// policy from the concurrency model.
type Arena struct {
	mu      sync.RWMutex
	k       int
	entries [][]byte
}

// New creates an empty Arena fixed to k-mer length k for its entire
// lifetime. Index 0 is pre-populated as the reserved scratch slot.
func New(k int) (*Arena, error) {
	if k < 3 {
		return nil, fmt.Errorf("arena: New(k=%d): %w", k, ErrKTooSmall)
	}

	return &Arena{
		k:       k,
		entries: [][]byte{{}}, // slot 0: reserved scratch
	}, nil
}

// K returns the fixed k-mer length this arena was constructed with.
func (a *Arena) K() int {
	return a.k
}

// K1 returns K-1, the (k-1)-mer (vertex) length.
func (a *Arena) K1() int {
	return a.k - 1
}

// Push appends a copy of b as a new entry and returns its stable
// index. The caller's slice is not aliased.
func (a *Arena) Push(b []byte) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := len(a.entries)
	a.entries = append(a.entries, append([]byte(nil), b...))

	return idx
}

// Read returns the byte slice stored at index i. The returned slice
// must be treated as read-only by the caller: mutate an entry only
// through Write, which atomically replaces the stored slice rather
// than editing bytes in place, so concurrent holders of a Read result
// never observe a partial mutation.
func (a *Arena) Read(i int) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if i < 0 || i >= len(a.entries) {
		return nil, fmt.Errorf("arena: Read(%d), len=%d: %w", i, len(a.entries), ErrIndexOutOfRange)
	}

	return a.entries[i], nil
}

// Write atomically replaces the entry at index i with a copy of b.
func (a *Arena) Write(i int, b []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i < 0 || i >= len(a.entries) {
		return fmt.Errorf("arena: Write(%d), len=%d: %w", i, len(a.entries), ErrIndexOutOfRange)
	}
	a.entries[i] = append([]byte(nil), b...)

	return nil
}

// Clear replaces the entry at index i with an empty slice, reclaiming
// its memory without shifting any other index. Callers must ensure no
// live EdgeSlice/NodeSlice still references i before calling Clear.
func (a *Arena) Clear(i int) error {
	return a.Write(i, nil)
}

// Truncate drops every entry with index >= newLen, shrinking the
// arena back to newLen entries. It is only legal when the caller
// knows no surviving NodeSlice/EdgeSlice addresses an index >= newLen.
// GIR vertex insertion does not use it: gir looks a window up in the
// scratch slot before pushing, so it never has a push to undo.
func (a *Arena) Truncate(newLen int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if newLen <= 0 || newLen > len(a.entries) {
		return fmt.Errorf("arena: Truncate(%d), len=%d: %w", newLen, len(a.entries), ErrBadTruncateTarget)
	}
	a.entries = a.entries[:newLen]

	return nil
}

// Len returns the current number of entries, including the reserved
// scratch slot.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.entries)
}
