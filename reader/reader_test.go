package reader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbruijn/dbgasm/config"
	"github.com/nbruijn/dbgasm/reader"
)

func TestFasta_YieldsEachRecord(t *testing.T) {
	r, err := reader.New(strings.NewReader(">r1\nACGTACGT\n>r2\nTTTTACGT\n"), config.Fasta, 4)
	require.NoError(t, err)

	rec1, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ACGTACGT", string(rec1.Seq))
	assert.Equal(t, int64(1), rec1.Weight)

	rec2, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "TTTTACGT", string(rec2.Seq))

	_, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFastq_OnlyConsumesSequenceLine(t *testing.T) {
	data := "@read1\nACGTACGT\n+\nIIIIIIII\n"
	r, err := reader.New(strings.NewReader(data), config.Fastq, 4)
	require.NoError(t, err)

	rec, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ACGTACGT", string(rec.Seq))

	_, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBFCounter_ParsesCountAsWeight(t *testing.T) {
	r, err := reader.New(strings.NewReader("ACGT\t42\nTTTT\t7\n"), config.BFCounter, 4)
	require.NoError(t, err)

	rec, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ACGT", string(rec.Seq))
	assert.Equal(t, int64(42), rec.Weight)
}

func TestBFCounter_RejectsMissingTab(t *testing.T) {
	r, err := reader.New(strings.NewReader("ACGT42\n"), config.BFCounter, 4)
	require.NoError(t, err)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, reader.ErrMalformedRecord)
}

func TestFasta_RejectsReadShorterThanK(t *testing.T) {
	r, err := reader.New(strings.NewReader(">r1\nACG\n"), config.Fasta, 4)
	require.NoError(t, err)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, reader.ErrReadTooShort)
}

func TestFasta_RejectsInvalidAlphabet(t *testing.T) {
	r, err := reader.New(strings.NewReader(">r1\nACGN\n"), config.Fasta, 4)
	require.NoError(t, err)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, reader.ErrInvalidAlphabet)
}

func TestFastq_RejectsTruncatedRecord(t *testing.T) {
	r, err := reader.New(strings.NewReader("@read1\nACGTACGT\n"), config.Fastq, 4)
	require.NoError(t, err)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, reader.ErrMalformedRecord)
}

func TestNew_RejectsNonPositiveK(t *testing.T) {
	_, err := reader.New(strings.NewReader(""), config.Fasta, 0)
	assert.ErrorIs(t, err, reader.ErrNonPositiveK)
}
