package arena

import (
	farm "github.com/dgryski/go-farm"

	"github.com/nbruijn/dbgasm/nucl"
)

// NodeSlice is a lightweight handle onto a (k-1)-mer stored in an
// Arena. It carries a "node-offset": for a kmer-layout entry at arena
// index i, offset 2i addresses the entry's first (prefix) half and
// offset 2i+1 addresses its second (suffix) half (see nucl's kmer
// layout). A NodeSlice does not cache decoded bytes; it re-derives
// them from the arena on every call, so it must not outlive the arena
// it was built from.
type NodeSlice struct {
	a      *Arena
	Offset int
}

// NodeView constructs a NodeSlice addressing the given node-offset
// within a.
func (a *Arena) NodeView(offset int) NodeSlice {
	return NodeSlice{a: a, Offset: offset}
}

// entryIndex and half split a node-offset back into its owning arena
// index and which (k-1)-mer half (0=prefix, 1=suffix) it names.
func (n NodeSlice) entryIndex() int { return n.Offset / 2 }
func (n NodeSlice) half() int       { return n.Offset % 2 }

// EntryIndex returns the arena index that owns this view's bytes. gir
// uses this during graph conversion to find the kmer-layout entry it
// reads (and converts via nucl.KmerToEdge into freshly pushed
// edge-layout entries) and then clears.
func (n NodeSlice) EntryIndex() int { return n.entryIndex() }

// Bytes decodes the (k-1)-mer this view addresses.
func (n NodeSlice) Bytes() ([]byte, error) {
	raw, err := n.a.Read(n.entryIndex())
	if err != nil {
		return nil, err
	}
	prefix, suffix, err := nucl.DecompressKmer(raw, n.a.K())
	if err != nil {
		return nil, err
	}
	if n.half() == 0 {
		return prefix, nil
	}

	return suffix, nil
}

// String decodes the (k-1)-mer as a string. It is provided for
// logging and test assertions; hot paths should prefer Bytes to avoid
// the extra allocation string() performs.
func (n NodeSlice) String() (string, error) {
	b, err := n.Bytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Equal reports whether two NodeSlices decode to the same (k-1)-mer
// string. Per spec, equality is defined by decoded bytes, not by
// offset: two different offsets may legitimately decode to the same
// string during transient ingestion state.
func (n NodeSlice) Equal(other NodeSlice) (bool, error) {
	a, err := n.Bytes()
	if err != nil {
		return false, err
	}
	b, err := other.Bytes()
	if err != nil {
		return false, err
	}

	return string(a) == string(b), nil
}

// Hash returns a fast, non-cryptographic hash of the decoded
// (k-1)-mer, suitable for bucketing NodeSlices in gir's vertex set.
func (n NodeSlice) Hash() (uint64, error) {
	b, err := n.Bytes()
	if err != nil {
		return 0, err
	}

	return farm.Hash64(b), nil
}

// EdgeSlice is a lightweight handle onto an edge label (a k-mer, or a
// longer merged label after shrinking) stored in edge layout at a
// single arena index.
type EdgeSlice struct {
	a   *Arena
	Idx int
}

// EdgeView constructs an EdgeSlice addressing arena index idx.
func (a *Arena) EdgeView(idx int) EdgeSlice {
	return EdgeSlice{a: a, Idx: idx}
}

// Bytes decodes the full edge label.
func (e EdgeSlice) Bytes() ([]byte, error) {
	raw, err := e.a.Read(e.Idx)
	if err != nil {
		return nil, err
	}

	return nucl.DecompressEdge(raw)
}

// String decodes the edge label as a string.
func (e EdgeSlice) String() (string, error) {
	b, err := e.Bytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// LastChar returns the edge label's final base without decoding the
// whole label.
func (e EdgeSlice) LastChar() (byte, error) {
	raw, err := e.a.Read(e.Idx)
	if err != nil {
		return 0, err
	}

	return nucl.LastChar(raw)
}

// Prefix returns the first K1 bases of the edge label: the source
// vertex's (k-1)-mer, reconstructable from any edge leaving it.
func (e EdgeSlice) Prefix(k1 int) ([]byte, error) {
	b, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) < k1 {
		return nil, ErrIndexOutOfRange
	}

	return b[:k1], nil
}

// Suffix returns the last K1 bases of the edge label: the target
// vertex's (k-1)-mer.
func (e EdgeSlice) Suffix(k1 int) ([]byte, error) {
	b, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) < k1 {
		return nil, ErrIndexOutOfRange
	}

	return b[len(b)-k1:], nil
}

// Equal reports whether two EdgeSlices decode to the same label.
func (e EdgeSlice) Equal(other EdgeSlice) (bool, error) {
	a, err := e.Bytes()
	if err != nil {
		return false, err
	}
	b, err := other.Bytes()
	if err != nil {
		return false, err
	}

	return string(a) == string(b), nil
}
