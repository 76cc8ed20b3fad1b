package dbgasm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbgasm "github.com/nbruijn/dbgasm"
	"github.com/nbruijn/dbgasm/config"
)

func TestAssemble_PureCycleCollapsesToOriginalRead(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "reads.fasta")
	out := filepath.Join(dir, "contigs.txt")
	require.NoError(t, os.WriteFile(in, []byte(">r1\nACGTAC\n"), 0o644))

	cfg, err := config.New(
		config.WithInputPath(in),
		config.WithInputFileType(config.Fasta),
		config.WithOutputPath(out),
		config.WithKMerSize(3),
		config.WithOriginalGenomeLength(6),
		config.WithMinimalWeightThreshold(1),
	)
	require.NoError(t, err)

	result, err := dbgasm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, result.Contigs, 1)
	assert.Equal(t, "ACGTAC", result.Contigs[0])
	assert.Equal(t, 1, result.Stats.ContigCount)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ACGTAC\n", string(written))
}

func TestAssemble_SkipsStandardizationWhenGenomeLengthUnset(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "reads.fasta")
	out := filepath.Join(dir, "contigs.txt")
	require.NoError(t, os.WriteFile(in, []byte(">r1\nACGTAC\n"), 0o644))

	cfg, err := config.New(
		config.WithInputPath(in),
		config.WithInputFileType(config.Fasta),
		config.WithOutputPath(out),
		config.WithKMerSize(3),
		config.WithMinimalWeightThreshold(1),
		// OriginalGenomeLength left at its zero value, as when
		// -genome-length is omitted on the CLI.
	)
	require.NoError(t, err)

	result, err := dbgasm.Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, result.Contigs, 1, "an unset genome length must skip standardization, not wipe the graph")
	assert.Equal(t, "ACGTAC", result.Contigs[0])
}

func TestAssemble_RejectsInvalidConfig(t *testing.T) {
	_, err := dbgasm.Assemble(&config.Config{})
	assert.ErrorIs(t, err, config.ErrMissingInputPath)
}
