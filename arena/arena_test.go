package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbruijn/dbgasm/arena"
)

func TestNew_RejectsSmallK(t *testing.T) {
	_, err := arena.New(2)
	require.ErrorIs(t, err, arena.ErrKTooSmall)
}

func TestNew_ReservesScratchSlot(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())

	got, err := a.Read(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPushReadWrite(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)

	idx := a.Push([]byte{0xAB, 0xCD})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, a.Len())

	got, err := a.Read(idx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, got)

	require.NoError(t, a.Write(idx, []byte{0x01}))
	got, err = a.Read(idx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, got)
}

func TestPush_DoesNotAliasCaller(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)

	src := []byte{0x01, 0x02}
	idx := a.Push(src)
	src[0] = 0xFF

	got, err := a.Read(idx)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), got[0], "arena entry must not alias caller's backing array")
}

func TestClear(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)

	idx := a.Push([]byte{0x01})
	require.NoError(t, a.Clear(idx))

	got, err := a.Read(idx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 2, a.Len(), "Clear must not shift indices")
}

func TestTruncate(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)

	a.Push([]byte{0x01})
	a.Push([]byte{0x02})
	a.Push([]byte{0x03})
	require.Equal(t, 4, a.Len())

	require.NoError(t, a.Truncate(2))
	assert.Equal(t, 2, a.Len())

	_, err = a.Read(2)
	require.ErrorIs(t, err, arena.ErrIndexOutOfRange)
}

func TestTruncate_RejectsGrowth(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)
	a.Push([]byte{0x01})

	err = a.Truncate(5)
	require.ErrorIs(t, err, arena.ErrBadTruncateTarget)
}

func TestReadWrite_OutOfRange(t *testing.T) {
	a, err := arena.New(4)
	require.NoError(t, err)

	_, err = a.Read(7)
	require.ErrorIs(t, err, arena.ErrIndexOutOfRange)

	err = a.Write(7, []byte{0x01})
	require.ErrorIs(t, err, arena.ErrIndexOutOfRange)
}
