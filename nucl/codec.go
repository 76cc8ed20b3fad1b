package nucl

import "fmt"

// Symbol codes per spec: A=00, C=01, G=10, T=11.
const (
	codeA = byte(0)
	codeC = byte(1)
	codeG = byte(2)
	codeT = byte(3)
)

// symbolsPerByte is the number of 2-bit symbols packed into one byte.
const symbolsPerByte = 4

// bitsPerSymbol is the width of one packed nucleotide code.
const bitsPerSymbol = 2

// symbolCode maps an ASCII base to its 2-bit code.
func symbolCode(b byte) (byte, error) {
	switch b {
	case 'A':
		return codeA, nil
	case 'C':
		return codeC, nil
	case 'G':
		return codeG, nil
	case 'T':
		return codeT, nil
	default:
		return 0, fmt.Errorf("nucl: byte %q: %w", b, ErrInvalidAlphabet)
	}
}

// codeSymbol is the inverse of symbolCode.
func codeSymbol(c byte) byte {
	switch c {
	case codeA:
		return 'A'
	case codeC:
		return 'C'
	case codeG:
		return 'G'
	default: // codeT
		return 'T'
	}
}

// byteSlotsFor returns the number of bytes needed to hold n packed
// 2-bit symbols: ceil(n/4).
func byteSlotsFor(n int) int {
	return (n + symbolsPerByte - 1) / symbolsPerByte
}

// CompressNode packs a (k-1)-mer into ceil(len(seq)/4) bytes, MSB-first
// within each byte. If len(seq) is not a multiple of 4, the unused
// slots of the final byte are left as zero bits in the low-order
// position, which is equivalent to "shifting the final chunk left so
// occupied bits are MSBs" — no post-processing is needed because
// symbols are written high-bit-first as they are encountered.
//
// Returns ErrInvalidAlphabet if seq contains a byte outside {A,C,G,T}.
func CompressNode(seq []byte) ([]byte, error) {
	out := make([]byte, byteSlotsFor(len(seq)))
	for i, b := range seq {
		code, err := symbolCode(b)
		if err != nil {
			return nil, err
		}
		byteIdx := i / symbolsPerByte
		shift := 6 - bitsPerSymbol*(i%symbolsPerByte)
		out[byteIdx] |= code << uint(shift)
	}

	return out, nil
}

// DecompressNode unpacks n symbols from packed, the inverse of
// CompressNode. The caller must supply n explicitly: packed alone
// cannot distinguish e.g. n=1 from n=4 (both occupy one byte).
func DecompressNode(packed []byte, n int) ([]byte, error) {
	if len(packed) < byteSlotsFor(n) {
		return nil, fmt.Errorf("nucl: need %d bytes for %d symbols, got %d: %w",
			byteSlotsFor(n), n, len(packed), ErrTruncatedInput)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		byteIdx := i / symbolsPerByte
		shift := 6 - bitsPerSymbol*(i%symbolsPerByte)
		code := (packed[byteIdx] >> uint(shift)) & 0x3
		out[i] = codeSymbol(code)
	}

	return out, nil
}

// CompressKmer packs a k-length window into kmer layout: the packed
// prefix (k-1)-mer (seq[:k-1]) followed immediately by the packed
// suffix (k-1)-mer (seq[1:k]), with no shared padding byte between
// them. len(seq) must equal k.
func CompressKmer(seq []byte, k int) ([]byte, error) {
	if len(seq) != k {
		return nil, fmt.Errorf("nucl: CompressKmer: want len(seq)==%d, got %d", k, len(seq))
	}
	k1 := k - 1
	prefix, err := CompressNode(seq[:k1])
	if err != nil {
		return nil, err
	}
	suffix, err := CompressNode(seq[1:k])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(prefix)+len(suffix))
	out = append(out, prefix...)
	out = append(out, suffix...)

	return out, nil
}

// DecompressKmer splits a kmer-layout blob back into its two
// (k-1)-mer halves (the node-offset-2i and node-offset-2i+1 views of
// the spec).
func DecompressKmer(packed []byte, k int) (prefix, suffix []byte, err error) {
	k1 := k - 1
	nb := byteSlotsFor(k1)
	if len(packed) < 2*nb {
		return nil, nil, fmt.Errorf("nucl: DecompressKmer: want %d bytes, got %d: %w",
			2*nb, len(packed), ErrTruncatedInput)
	}
	prefix, err = DecompressNode(packed[:nb], k1)
	if err != nil {
		return nil, nil, err
	}
	suffix, err = DecompressNode(packed[nb:2*nb], k1)
	if err != nil {
		return nil, nil, err
	}

	return prefix, suffix, nil
}

// CompressEdge packs a full edge label (length >= 3, possibly longer
// than K after shrinking) into edge layout: one leading padding byte
// (the count of unused 2-bit slots in the final payload byte, 0..3)
// followed by the node-layout payload.
func CompressEdge(seq []byte) ([]byte, error) {
	if len(seq) < 3 {
		return nil, fmt.Errorf("nucl: CompressEdge: len(seq)=%d: %w", len(seq), ErrSequenceTooShort)
	}
	payload, err := CompressNode(seq)
	if err != nil {
		return nil, err
	}
	padding := byte(len(payload)*symbolsPerByte - len(seq))
	out := make([]byte, 0, 1+len(payload))
	out = append(out, padding)
	out = append(out, payload...)

	return out, nil
}

// edgeLength returns the decoded symbol count of an edge-layout blob
// together with its padding byte and payload slice, validating shape.
func edgeLength(edge []byte) (length int, padding byte, payload []byte, err error) {
	if len(edge) < 1 {
		return 0, 0, nil, ErrEmptyEdge
	}
	padding = edge[0]
	if padding > 3 {
		return 0, 0, nil, fmt.Errorf("nucl: padding=%d: %w", padding, ErrBadPadding)
	}
	payload = edge[1:]
	length = len(payload)*symbolsPerByte - int(padding)
	if length < 3 {
		return 0, 0, nil, fmt.Errorf("nucl: decoded length %d: %w", length, ErrSequenceTooShort)
	}

	return length, padding, payload, nil
}

// DecompressEdge unpacks an edge-layout blob back to its full base
// string. The length is recovered from the blob itself; no external K
// is required.
func DecompressEdge(edge []byte) ([]byte, error) {
	length, _, payload, err := edgeLength(edge)
	if err != nil {
		return nil, err
	}

	return DecompressNode(payload, length)
}

// LastChar returns the final base of a packed edge without
// decompressing the whole blob.
func LastChar(edge []byte) (byte, error) {
	length, _, payload, err := edgeLength(edge)
	if err != nil {
		return 0, err
	}
	idx := length - 1
	byteIdx := idx / symbolsPerByte
	shift := 6 - bitsPerSymbol*(idx%symbolsPerByte)
	code := (payload[byteIdx] >> uint(shift)) & 0x3

	return codeSymbol(code), nil
}

// ChangeLastCharInEdge returns a copy of edge with its final base
// replaced by c, leaving every other packed byte untouched.
func ChangeLastCharInEdge(edge []byte, c byte) ([]byte, error) {
	length, _, _, err := edgeLength(edge)
	if err != nil {
		return nil, err
	}
	code, err := symbolCode(c)
	if err != nil {
		return nil, err
	}
	out := append([]byte(nil), edge...)
	idx := length - 1
	byteIdx := 1 + idx/symbolsPerByte // +1 to skip the padding header byte
	shift := 6 - bitsPerSymbol*(idx%symbolsPerByte)
	out[byteIdx] = (out[byteIdx] &^ (0x3 << uint(shift))) | (code << uint(shift))

	return out, nil
}

// ExtendEdge appends the uncompressed bases in suffix to an already
// packed edge, returning a freshly packed blob. The result grows by
// one byte whenever the new total length crosses a 4-symbol boundary
// (equivalently: whenever padding would wrap from 0 back to 3).
//
// This decodes the whole edge and recompresses length(edge)+len(suffix)
// bases, so each call costs O(result length) and a chain of n
// extensions costs the sum of all intermediate lengths (quadratic in
// the chain length), which is the simplest correct implementation.
func ExtendEdge(edge []byte, suffix []byte) ([]byte, error) {
	decoded, err := DecompressEdge(edge)
	if err != nil {
		return nil, err
	}
	grown := make([]byte, 0, len(decoded)+len(suffix))
	grown = append(grown, decoded...)
	grown = append(grown, suffix...)

	return CompressEdge(grown)
}

// KmerToEdge re-packs a kmer-layout blob as an edge-layout blob: the
// full k-length sequence is the prefix (k-1)-mer plus the suffix
// (k-1)-mer's last base.
func KmerToEdge(kmer []byte, k int) ([]byte, error) {
	prefix, suffix, err := DecompressKmer(kmer, k)
	if err != nil {
		return nil, err
	}
	seq := make([]byte, 0, k)
	seq = append(seq, prefix...)
	seq = append(seq, suffix[len(suffix)-1])

	return CompressEdge(seq)
}

// ValidAlphabet reports whether every byte in seq is one of A, C, G, T.
// Used by callers (e.g. reader) that want to fail fast on malformed
// input before it ever reaches the codec.
func ValidAlphabet(seq []byte) bool {
	for _, b := range seq {
		if _, err := symbolCode(b); err != nil {
			return false
		}
	}

	return true
}
