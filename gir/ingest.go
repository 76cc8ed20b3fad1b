package gir

import (
	"fmt"

	"github.com/nbruijn/dbgasm/nucl"
)

// scratchPrefixOffset and scratchSuffixOffset address the two (k-1)-mer
// halves of whatever kmer-layout blob currently sits in the arena's
// reserved scratch slot (index 0): offset 0 is the prefix, offset 1
// is the suffix.
const (
	scratchPrefixOffset = 0
	scratchSuffixOffset = 1
)

// IngestRead slides a length-K window across read and records every
// transition it observes. If rc is true, it afterwards ingests the
// reverse complement of the whole read as a second pass — scheduled
// strictly after the forward pass so that a read's own
// forward-strand chaining is never disturbed by interleaving the two
// directions mid-read.
func (g *GIR) IngestRead(read []byte, rc bool) error {
	if err := g.ingestWindows(read); err != nil {
		return err
	}
	if rc {
		if err := g.ingestWindows(ReverseComplement(read)); err != nil {
			return err
		}
	}

	return nil
}

// IngestWeightedRead is IngestRead for a record whose every window
// transition should count weight times instead of once — the
// BFCounter case, where a line names one k-mer and its observed
// count directly rather than a read to derive occurrences from.
func (g *GIR) IngestWeightedRead(read []byte, weight int64, rc bool) error {
	if weight <= 0 {
		return fmt.Errorf("gir: IngestWeightedRead: weight=%d: %w", weight, ErrNonPositiveWeight)
	}
	for i := int64(0); i < weight; i++ {
		if err := g.IngestRead(read, rc); err != nil {
			return err
		}
	}

	return nil
}

func (g *GIR) ingestWindows(read []byte) error {
	k := g.a.K()
	if len(read) < k {
		return fmt.Errorf("gir: ingest len(read)=%d, k=%d: %w", len(read), k, ErrReadTooShort)
	}

	for start := 0; start+k <= len(read); start++ {
		window := read[start : start+k]
		packed, err := nucl.CompressKmer(window, k)
		if err != nil {
			return err
		}
		if err := g.a.Write(0, packed); err != nil {
			return err
		}

		src, pushedForSrc, err := g.getOrCreateSource()
		if err != nil {
			return err
		}
		tgt, err := g.getOrCreateTarget(src, pushedForSrc)
		if err != nil {
			return err
		}
		recordEdge(src, tgt.idx, window[k-1])
	}

	return nil
}

// getOrCreateSource looks up the vertex named by the scratch slot's
// prefix half. If absent, it commits the scratch bytes to a fresh
// arena entry and reports pushed=true, so getOrCreateTarget can reuse
// that same entry's second half instead of pushing again.
func (g *GIR) getOrCreateSource() (v *vertex, pushed bool, err error) {
	view := g.a.NodeView(scratchPrefixOffset)
	existing, err := g.lookup(view)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	raw, err := g.a.Read(0)
	if err != nil {
		return nil, false, err
	}
	n := g.a.Push(raw)
	nv := &vertex{node: g.a.NodeView(2 * n), idx: len(g.order)}
	if err := g.insert(nv); err != nil {
		return nil, false, err
	}

	return nv, true, nil
}

// getOrCreateTarget looks up the vertex named by the scratch slot's
// suffix half. If absent and the source was just created, it reuses
// the arena entry the source already owns (its second half already
// holds the right bytes, copied verbatim from scratch); otherwise it
// pushes the scratch bytes again to get a fresh entry for the target
// alone.
func (g *GIR) getOrCreateTarget(src *vertex, pushedForSrc bool) (*vertex, error) {
	view := g.a.NodeView(scratchSuffixOffset)
	existing, err := g.lookup(view)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var offset int
	if pushedForSrc {
		offset = 2*src.node.EntryIndex() + 1
	} else {
		raw, err := g.a.Read(0)
		if err != nil {
			return nil, err
		}
		m := g.a.Push(raw)
		offset = 2*m + 1
	}
	nv := &vertex{node: g.a.NodeView(offset), idx: len(g.order)}
	if err := g.insert(nv); err != nil {
		return nil, err
	}

	return nv, nil
}

var complement = map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

// ReverseComplement returns the reverse complement of a base string.
func ReverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = complement[b]
	}

	return out
}
