package schema

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/encoding"
	"github.com/aeriksson/blocktable/errs"
)

// inlineArraySchema encodes a slice as: Int32 length, '[', elements
// separated by ',', ']'. Its own size is variable even when inner is
// fixed size, since different slices carry different lengths.
type inlineArraySchema[V any] struct {
	inner Schema[V]
}

// InlineArray describes a variable-length slice of inner-schema elements,
// stored inline (length-prefixed, not by reference).
func InlineArray[V any](inner Schema[V]) Schema[[]V] {
	return inlineArraySchema[V]{inner}
}

func (s inlineArraySchema[V]) IsFixedSize() bool { return false }

func (s inlineArraySchema[V]) DynamicSize(v []V) int {
	size := encoding.SizeInt + encoding.SizeChar
	for i, elem := range v {
		if i > 0 {
			size += encoding.SizeChar
		}
		size += s.inner.DynamicSize(elem)
	}
	return size + encoding.SizeChar
}

func (s inlineArraySchema[V]) Read(cur *buffer.ReadCursor) ([]V, error) {
	n, err := encoding.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errCorrupted(op+".InlineArray.Read", "negative array length")
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorArrayStart); err != nil {
		return nil, err
	}
	out := make([]V, n)
	for i := 0; i < int(n); i++ {
		if i > 0 {
			if err := encoding.ReadIndicator(cur, encoding.IndicatorArraySep); err != nil {
				return nil, err
			}
		}
		v, err := s.inner.Read(cur)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorArrayEnd); err != nil {
		return nil, err
	}
	return out, nil
}

func (s inlineArraySchema[V]) Write(cur *buffer.WriteCursor, v []V) error {
	if err := encoding.WriteInt32(cur, int32(len(v))); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorArrayStart); err != nil {
		return err
	}
	for i, elem := range v {
		if i > 0 {
			if err := encoding.WriteIndicator(cur, encoding.IndicatorArraySep); err != nil {
				return err
			}
		}
		if err := s.inner.Write(cur, elem); err != nil {
			return err
		}
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorArrayEnd)
}

// fixedSizeInlineArraySchema is like inlineArraySchema but commits to a
// fixed element count n, which makes its own size fixed whenever inner's
// is. Every value written or read must have exactly n elements.
type fixedSizeInlineArraySchema[V any] struct {
	inner Schema[V]
	n     int
}

// FixedSizeInlineArray describes a slice of exactly n inner-schema
// elements. IsFixedSize reports true when inner is itself fixed size,
// letting fixed-layout tables address FixedSizeInlineArray columns by
// multiplication.
func FixedSizeInlineArray[V any](inner Schema[V], n int) Schema[[]V] {
	return fixedSizeInlineArraySchema[V]{inner, n}
}

func (s fixedSizeInlineArraySchema[V]) IsFixedSize() bool { return s.inner.IsFixedSize() }

func (s fixedSizeInlineArraySchema[V]) DynamicSize(v []V) int {
	size := encoding.SizeInt + encoding.SizeChar
	for i := 0; i < s.n; i++ {
		if i > 0 {
			size += encoding.SizeChar
		}
		var elem V
		if i < len(v) {
			elem = v[i]
		}
		size += s.inner.DynamicSize(elem)
	}
	return size + encoding.SizeChar
}

func (s fixedSizeInlineArraySchema[V]) Read(cur *buffer.ReadCursor) ([]V, error) {
	gotN, err := encoding.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if int(gotN) != s.n {
		return nil, errCorrupted(op+".FixedSizeInlineArray.Read", "array length does not match fixed schema size")
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorArrayStart); err != nil {
		return nil, err
	}
	out := make([]V, s.n)
	for i := 0; i < s.n; i++ {
		if i > 0 {
			if err := encoding.ReadIndicator(cur, encoding.IndicatorArraySep); err != nil {
				return nil, err
			}
		}
		v, err := s.inner.Read(cur)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorArrayEnd); err != nil {
		return nil, err
	}
	return out, nil
}

func (s fixedSizeInlineArraySchema[V]) Write(cur *buffer.WriteCursor, v []V) error {
	if len(v) != s.n {
		return errs.New(errs.InvalidArgument, op+".FixedSizeInlineArray.Write", "value length does not match fixed array size")
	}
	if err := encoding.WriteInt32(cur, int32(s.n)); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorArrayStart); err != nil {
		return err
	}
	for i, elem := range v {
		if i > 0 {
			if err := encoding.WriteIndicator(cur, encoding.IndicatorArraySep); err != nil {
				return err
			}
		}
		if err := s.inner.Write(cur, elem); err != nil {
			return err
		}
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorArrayEnd)
}
