package builder

import (
	"github.com/nbruijn/dbgasm/gir"
	"github.com/nbruijn/dbgasm/reader"
)

// Builder pulls every record out of a reader.Reader and ingests it
// into a gir.GIR, one record at a time, until the reader is
// exhausted.
type Builder struct {
	r   *reader.Reader
	g   *gir.GIR
	cfg *builderConfig
}

// New builds a Builder over r and g. Neither may be nil.
func New(r *reader.Reader, g *gir.GIR, opts ...BuilderOption) (*Builder, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if g == nil {
		return nil, ErrNilGIR
	}

	return &Builder{r: r, g: g, cfg: newBuilderConfig(opts...)}, nil
}

// Build drains the reader, ingesting every record's sequence into the
// GIR with its own weight (1 for FASTA/FASTQ, the BFCounter count
// otherwise). It returns the number of records ingested.
func (b *Builder) Build() (int, error) {
	n := 0
	for {
		rec, ok, err := b.r.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		if err := b.g.IngestWeightedRead(rec.Seq, rec.Weight, b.cfg.reverseComplement); err != nil {
			return n, err
		}
		n++
	}
}
