package buffer_test

import (
	"testing"

	"github.com/aeriksson/blocktable/buffer"
	"github.com/stretchr/testify/require"
)

func TestResizeGrowsCapacity(t *testing.T) {
	b := buffer.New(1)
	b.Resize(5, true)
	require.GreaterOrEqual(t, b.Capacity(), 5)
}

func TestViewsSurviveResize(t *testing.T) {
	b := buffer.New(1)
	b.Resize(5, true)

	w := b.WriteCursorFrom(1, 3)
	require.NoError(t, w.Next('A'))
	require.NoError(t, w.Next('B'))

	b.Resize(20, false)

	r := b.ReadCursorFrom(1, 3)
	v1, err := r.Next()
	require.NoError(t, err)
	v2, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, byte('A'), v1)
	require.Equal(t, byte('B'), v2)
}

func TestCursorOverrunFails(t *testing.T) {
	b := buffer.New(4)
	r := b.ReadCursorFrom(0, 2)
	_, err := r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.Error(t, err)
}

func TestBlockReaderWriter(t *testing.T) {
	b := buffer.New(8)
	w := b.WriteCursorFrom(0, 8)
	require.NoError(t, w.BlockWriter([]byte("abcdefgh")))

	r := b.ReadCursorFrom(0, 8)
	dst := make([]byte, 8)
	require.NoError(t, r.BlockReader(dst))
	require.Equal(t, "abcdefgh", string(dst))
}

func TestBlockReaderOverrun(t *testing.T) {
	b := buffer.New(4)
	r := b.ReadCursorFrom(0, 4)
	dst := make([]byte, 5)
	require.Error(t, r.BlockReader(dst))
}
