package schema_test

import (
	"testing"

	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/schema"
	"github.com/stretchr/testify/require"
)

func roundTrip[V any](t *testing.T, s schema.Schema[V], v V) V {
	t.Helper()
	size := s.DynamicSize(v)
	b := buffer.New(size)
	w := b.WriteCursorFrom(0, size)
	require.NoError(t, s.Write(w, v))
	require.Equal(t, size, w.Pos())
	r := b.ReadCursorFrom(0, size)
	got, err := s.Read(r)
	require.NoError(t, err)
	return got
}

func TestPrimitiveRoundTrip(t *testing.T) {
	require.Equal(t, uint8(200), roundTrip(t, schema.Byte(), uint8(200)))
	require.Equal(t, int32(-7), roundTrip(t, schema.Int32(), int32(-7)))
	require.Equal(t, int64(1<<40), roundTrip(t, schema.Int64(), int64(1<<40)))
	require.Equal(t, "hello", roundTrip(t, schema.String(), "hello"))
}

func TestPrimitivesAreFixedSize(t *testing.T) {
	require.True(t, schema.Byte().IsFixedSize())
	require.True(t, schema.Int32().IsFixedSize())
	require.True(t, schema.Int64().IsFixedSize())
	require.False(t, schema.String().IsFixedSize())
}

func TestTuple2RoundTrip(t *testing.T) {
	s := schema.Tuple2Schema(schema.Int32(), schema.String())
	require.True(t, schema.Tuple2Schema(schema.Int32(), schema.Byte()).IsFixedSize())
	require.False(t, s.IsFixedSize())

	v := schema.Tuple2[int32, string]{V0: 42, V1: "Amsterdam"}
	got := roundTrip(t, s, v)
	require.Equal(t, v, got)
}

func TestTuple7RoundTrip(t *testing.T) {
	s := schema.Tuple7Schema(
		schema.Byte(), schema.Int32(), schema.Int64(), schema.String(),
		schema.Byte(), schema.Int32(), schema.Int64(),
	)
	v := schema.Tuple7[uint8, int32, int64, string, uint8, int32, int64]{
		V0: 1, V1: 2, V2: 3, V3: "three", V4: 4, V5: 5, V6: 6,
	}
	got := roundTrip(t, s, v)
	require.Equal(t, v, got)
}

func TestInlineArrayRoundTrip(t *testing.T) {
	s := schema.InlineArray(schema.Int32())
	require.False(t, s.IsFixedSize())

	require.Equal(t, []int32{}, roundTrip(t, s, []int32{}))
	require.Equal(t, []int32{1, 2, 3}, roundTrip(t, s, []int32{1, 2, 3}))
}

func TestFixedSizeInlineArrayRoundTrip(t *testing.T) {
	s := schema.FixedSizeInlineArray(schema.Byte(), 3)
	require.True(t, s.IsFixedSize())

	v := []uint8{10, 20, 30}
	got := roundTrip(t, s, v)
	require.Equal(t, v, got)
}

func TestFixedSizeInlineArrayRejectsWrongLength(t *testing.T) {
	s := schema.FixedSizeInlineArray(schema.Byte(), 3)
	size := s.DynamicSize([]uint8{0, 0, 0})
	b := buffer.New(size)
	w := b.WriteCursorFrom(0, size)
	err := s.Write(w, []uint8{1, 2})
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.InvalidArgument))
}

func TestNestedTupleOfArrays(t *testing.T) {
	s := schema.Tuple2Schema(schema.InlineArray(schema.Int32()), schema.String())
	v := schema.Tuple2[[]int32, string]{V0: []int32{5, 6, 7}, V1: "marins"}
	got := roundTrip(t, s, v)
	require.Equal(t, v, got)
}
