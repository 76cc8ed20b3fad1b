package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nbruijn/dbgasm/config"
	"github.com/nbruijn/dbgasm/nucl"
)

// maxLineBytes bounds a single scanned line; reads or BFCounter
// records longer than this are almost certainly a malformed file
// rather than real sequencing data.
const maxLineBytes = 1 << 20

// Record is one ingestible unit: a sequence and its initial edge
// weight (1 for FASTA/FASTQ, the count column for BFCounter).
type Record struct {
	Seq    []byte
	Weight int64
}

// Reader scans a FASTA, FASTQ, or BFCounter stream into Records.
type Reader struct {
	scanner  *bufio.Scanner
	fileType config.FileType
	k        int
}

// New wraps r as a Reader of fileType, validating each yielded record
// against k.
func New(r io.Reader, fileType config.FileType, k int) (*Reader, error) {
	if k <= 0 {
		return nil, ErrNonPositiveK
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Reader{scanner: s, fileType: fileType, k: k}, nil
}

// Next returns the next Record, or ok=false once input is exhausted.
// A record shorter than k or outside {A,C,G,T} is a fatal error, not
// a skip.
func (r *Reader) Next() (Record, bool, error) {
	switch r.fileType {
	case config.Fasta:
		return r.nextFasta()
	case config.Fastq:
		return r.nextFastq()
	case config.BFCounter:
		return r.nextBFCounter()
	default:
		return Record{}, false, fmt.Errorf("reader: Next: %w: %v", ErrUnknownFileType, r.fileType)
	}
}

func (r *Reader) nextFasta() (Record, bool, error) {
	if !r.scanner.Scan() {
		return Record{}, false, r.scanner.Err()
	}
	if !r.scanner.Scan() {
		return Record{}, false, fmt.Errorf("reader: nextFasta: %w: truncated record", ErrMalformedRecord)
	}
	seq := append([]byte(nil), r.scanner.Bytes()...)

	return r.validate(seq, 1)
}

func (r *Reader) nextFastq() (Record, bool, error) {
	if !r.scanner.Scan() { // @id
		return Record{}, false, r.scanner.Err()
	}
	if !r.scanner.Scan() { // sequence
		return Record{}, false, fmt.Errorf("reader: nextFastq: %w: truncated record", ErrMalformedRecord)
	}
	seq := append([]byte(nil), r.scanner.Bytes()...)
	if !r.scanner.Scan() { // +
		return Record{}, false, fmt.Errorf("reader: nextFastq: %w: truncated record", ErrMalformedRecord)
	}
	if !r.scanner.Scan() { // quality
		return Record{}, false, fmt.Errorf("reader: nextFastq: %w: truncated record", ErrMalformedRecord)
	}

	return r.validate(seq, 1)
}

func (r *Reader) nextBFCounter() (Record, bool, error) {
	if !r.scanner.Scan() {
		return Record{}, false, r.scanner.Err()
	}
	line := r.scanner.Text()
	idx := strings.IndexByte(line, '\t')
	if idx < 0 {
		return Record{}, false, fmt.Errorf("reader: nextBFCounter: %w: missing tab in %q", ErrMalformedRecord, line)
	}
	seq := []byte(line[:idx])
	count, err := strconv.ParseInt(line[idx+1:], 10, 64)
	if err != nil || count <= 0 {
		return Record{}, false, fmt.Errorf("reader: nextBFCounter: %w: invalid count in %q", ErrMalformedRecord, line)
	}

	return r.validate(seq, count)
}

func (r *Reader) validate(seq []byte, weight int64) (Record, bool, error) {
	if len(seq) < r.k {
		return Record{}, false, fmt.Errorf("reader: validate: %w: length %d < k %d", ErrReadTooShort, len(seq), r.k)
	}
	if !nucl.ValidAlphabet(seq) {
		return Record{}, false, fmt.Errorf("reader: validate: %w: %q", ErrInvalidAlphabet, seq)
	}

	return Record{Seq: seq, Weight: weight}, true, nil
}
