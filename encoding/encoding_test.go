package encoding_test

import (
	"math"
	"testing"

	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/encoding"
	"github.com/aeriksson/blocktable/errs"
	"github.com/stretchr/testify/require"
)

func roundTripInt64(t *testing.T, v int64) int64 {
	t.Helper()
	b := buffer.New(encoding.SizeLong)
	w := b.WriteCursorFrom(0, encoding.SizeLong)
	require.NoError(t, encoding.WriteInt64(w, v))
	r := b.ReadCursorFrom(0, encoding.SizeLong)
	got, err := encoding.ReadInt64(r)
	require.NoError(t, err)
	return got
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 43, -12, math.MaxInt64, math.MinInt64, 1000000} {
		require.Equal(t, v, roundTripInt64(t, v))
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32, -12} {
		b := buffer.New(encoding.SizeInt)
		w := b.WriteCursorFrom(0, encoding.SizeInt)
		require.NoError(t, encoding.WriteInt32(w, v))
		r := b.ReadCursorFrom(0, encoding.SizeInt)
		got, err := encoding.ReadInt32(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestByteValRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 255, 128} {
		b := buffer.New(encoding.SizeByte)
		w := b.WriteCursorFrom(0, encoding.SizeByte)
		require.NoError(t, encoding.WriteByteVal(w, v))
		r := b.ReadCursorFrom(0, encoding.SizeByte)
		got, err := encoding.ReadByteVal(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "Dans le port d'Amsterdam", "Y a des marins qui chantent"} {
		size := encoding.StringSize(len(s))
		b := buffer.New(size)
		w := b.WriteCursorFrom(0, size)
		require.NoError(t, encoding.WriteString(w, s))
		r := b.ReadCursorFrom(0, size)
		got, err := encoding.ReadString(r)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestReferenceAndOffsetRoundTrip(t *testing.T) {
	b := buffer.New(encoding.SizeReference)
	w := b.WriteCursorFrom(0, encoding.SizeReference)
	require.NoError(t, encoding.WriteReference(w, math.MinInt64))
	r := b.ReadCursorFrom(0, encoding.SizeReference)
	got, err := encoding.ReadReference(r)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), got)

	b2 := buffer.New(encoding.SizeOffset)
	w2 := b2.WriteCursorFrom(0, encoding.SizeOffset)
	require.NoError(t, encoding.WriteOffset(w2, -99))
	r2 := b2.ReadCursorFrom(0, encoding.SizeOffset)
	got2, err := encoding.ReadOffset(r2)
	require.NoError(t, err)
	require.Equal(t, int32(-99), got2)
}

func TestIndicatorMismatchFailsCorrupted(t *testing.T) {
	b := buffer.New(encoding.SizeChar)
	w := b.WriteCursorFrom(0, encoding.SizeChar)
	require.NoError(t, encoding.WriteIndicator(w, '['))
	r := b.ReadCursorFrom(0, encoding.SizeChar)
	err := encoding.ReadIndicator(r, ']')
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.Corrupted))
}

func TestObjectSeparatorRoundTrip(t *testing.T) {
	b := buffer.New(2 * encoding.SizeChar)
	w := b.WriteCursorFrom(0, 2*encoding.SizeChar)
	require.NoError(t, encoding.WriteObjectSeparator(w))
	r := b.ReadCursorFrom(0, 2*encoding.SizeChar)
	require.NoError(t, encoding.ReadObjectSeparator(r))
}

func TestNonDigitWhereDigitExpectedFails(t *testing.T) {
	b := buffer.New(encoding.SizeInt)
	w := b.WriteCursorFrom(0, encoding.SizeInt)
	// Hand-craft garbage where a digit is expected.
	for i := 0; i < 11; i++ {
		require.NoError(t, encoding.WriteChar(w, 'x'))
	}
	r := b.ReadCursorFrom(0, encoding.SizeInt)
	_, err := encoding.ReadInt32(r)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.Corrupted))
}
