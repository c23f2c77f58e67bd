package schema

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/encoding"
)

// Tuple1 through Tuple7 are the value types produced by the corresponding
// TupleN schema constructors. Fields are named positionally (V0, V1, ...)
// since the element types carry no names of their own.

type Tuple1[A any] struct {
	V0 A
}

type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

// Tuple sizes throughout this file are accounted as: one SizeChar for the
// opening '(' indicator, then each element's own size followed by one
// SizeChar for the ',' separator after it, or for the closing ')' after
// the last element.

type tuple1Schema[A any] struct{ s0 Schema[A] }

// Tuple1Schema composes a single schema into a 1-element tuple. Included
// for symmetry with the higher arities; a bare Schema[A] is equivalent
// and usually preferable.
func Tuple1Schema[A any](s0 Schema[A]) Schema[Tuple1[A]] { return tuple1Schema[A]{s0} }

func (s tuple1Schema[A]) IsFixedSize() bool { return s.s0.IsFixedSize() }

func (s tuple1Schema[A]) DynamicSize(v Tuple1[A]) int {
	return encoding.SizeChar + s.s0.DynamicSize(v.V0) + encoding.SizeChar
}

func (s tuple1Schema[A]) Read(cur *buffer.ReadCursor) (Tuple1[A], error) {
	var zero Tuple1[A]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple1[A]{v0}, nil
}

func (s tuple1Schema[A]) Write(cur *buffer.WriteCursor, v Tuple1[A]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}

type tuple2Schema[A, B any] struct {
	s0 Schema[A]
	s1 Schema[B]
}

// Tuple2Schema composes two schemas into one for a 2-element tuple.
func Tuple2Schema[A, B any](s0 Schema[A], s1 Schema[B]) Schema[Tuple2[A, B]] {
	return tuple2Schema[A, B]{s0, s1}
}

func (s tuple2Schema[A, B]) IsFixedSize() bool {
	return s.s0.IsFixedSize() && s.s1.IsFixedSize()
}

func (s tuple2Schema[A, B]) DynamicSize(v Tuple2[A, B]) int {
	return encoding.SizeChar + s.s0.DynamicSize(v.V0) + encoding.SizeChar + s.s1.DynamicSize(v.V1) + encoding.SizeChar
}

func (s tuple2Schema[A, B]) Read(cur *buffer.ReadCursor) (Tuple2[A, B], error) {
	var zero Tuple2[A, B]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v1, err := s.s1.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple2[A, B]{v0, v1}, nil
}

func (s tuple2Schema[A, B]) Write(cur *buffer.WriteCursor, v Tuple2[A, B]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s1.Write(cur, v.V1); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}

type tuple3Schema[A, B, C any] struct {
	s0 Schema[A]
	s1 Schema[B]
	s2 Schema[C]
}

// Tuple3Schema composes three schemas into one for a 3-element tuple.
func Tuple3Schema[A, B, C any](s0 Schema[A], s1 Schema[B], s2 Schema[C]) Schema[Tuple3[A, B, C]] {
	return tuple3Schema[A, B, C]{s0, s1, s2}
}

func (s tuple3Schema[A, B, C]) IsFixedSize() bool {
	return s.s0.IsFixedSize() && s.s1.IsFixedSize() && s.s2.IsFixedSize()
}

func (s tuple3Schema[A, B, C]) DynamicSize(v Tuple3[A, B, C]) int {
	return encoding.SizeChar +
		s.s0.DynamicSize(v.V0) + encoding.SizeChar +
		s.s1.DynamicSize(v.V1) + encoding.SizeChar +
		s.s2.DynamicSize(v.V2) + encoding.SizeChar
}

func (s tuple3Schema[A, B, C]) Read(cur *buffer.ReadCursor) (Tuple3[A, B, C], error) {
	var zero Tuple3[A, B, C]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v1, err := s.s1.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v2, err := s.s2.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple3[A, B, C]{v0, v1, v2}, nil
}

func (s tuple3Schema[A, B, C]) Write(cur *buffer.WriteCursor, v Tuple3[A, B, C]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s1.Write(cur, v.V1); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s2.Write(cur, v.V2); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}

type tuple4Schema[A, B, C, D any] struct {
	s0 Schema[A]
	s1 Schema[B]
	s2 Schema[C]
	s3 Schema[D]
}

// Tuple4Schema composes four schemas into one for a 4-element tuple.
func Tuple4Schema[A, B, C, D any](s0 Schema[A], s1 Schema[B], s2 Schema[C], s3 Schema[D]) Schema[Tuple4[A, B, C, D]] {
	return tuple4Schema[A, B, C, D]{s0, s1, s2, s3}
}

func (s tuple4Schema[A, B, C, D]) IsFixedSize() bool {
	return s.s0.IsFixedSize() && s.s1.IsFixedSize() && s.s2.IsFixedSize() && s.s3.IsFixedSize()
}

func (s tuple4Schema[A, B, C, D]) DynamicSize(v Tuple4[A, B, C, D]) int {
	return encoding.SizeChar +
		s.s0.DynamicSize(v.V0) + encoding.SizeChar +
		s.s1.DynamicSize(v.V1) + encoding.SizeChar +
		s.s2.DynamicSize(v.V2) + encoding.SizeChar +
		s.s3.DynamicSize(v.V3) + encoding.SizeChar
}

func (s tuple4Schema[A, B, C, D]) Read(cur *buffer.ReadCursor) (Tuple4[A, B, C, D], error) {
	var zero Tuple4[A, B, C, D]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v1, err := s.s1.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v2, err := s.s2.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v3, err := s.s3.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple4[A, B, C, D]{v0, v1, v2, v3}, nil
}

func (s tuple4Schema[A, B, C, D]) Write(cur *buffer.WriteCursor, v Tuple4[A, B, C, D]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s1.Write(cur, v.V1); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s2.Write(cur, v.V2); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s3.Write(cur, v.V3); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}

type tuple5Schema[A, B, C, D, E any] struct {
	s0 Schema[A]
	s1 Schema[B]
	s2 Schema[C]
	s3 Schema[D]
	s4 Schema[E]
}

// Tuple5Schema composes five schemas into one for a 5-element tuple.
func Tuple5Schema[A, B, C, D, E any](s0 Schema[A], s1 Schema[B], s2 Schema[C], s3 Schema[D], s4 Schema[E]) Schema[Tuple5[A, B, C, D, E]] {
	return tuple5Schema[A, B, C, D, E]{s0, s1, s2, s3, s4}
}

func (s tuple5Schema[A, B, C, D, E]) IsFixedSize() bool {
	return s.s0.IsFixedSize() && s.s1.IsFixedSize() && s.s2.IsFixedSize() && s.s3.IsFixedSize() && s.s4.IsFixedSize()
}

func (s tuple5Schema[A, B, C, D, E]) DynamicSize(v Tuple5[A, B, C, D, E]) int {
	return encoding.SizeChar +
		s.s0.DynamicSize(v.V0) + encoding.SizeChar +
		s.s1.DynamicSize(v.V1) + encoding.SizeChar +
		s.s2.DynamicSize(v.V2) + encoding.SizeChar +
		s.s3.DynamicSize(v.V3) + encoding.SizeChar +
		s.s4.DynamicSize(v.V4) + encoding.SizeChar
}

func (s tuple5Schema[A, B, C, D, E]) Read(cur *buffer.ReadCursor) (Tuple5[A, B, C, D, E], error) {
	var zero Tuple5[A, B, C, D, E]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v1, err := s.s1.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v2, err := s.s2.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v3, err := s.s3.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v4, err := s.s4.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple5[A, B, C, D, E]{v0, v1, v2, v3, v4}, nil
}

func (s tuple5Schema[A, B, C, D, E]) Write(cur *buffer.WriteCursor, v Tuple5[A, B, C, D, E]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s1.Write(cur, v.V1); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s2.Write(cur, v.V2); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s3.Write(cur, v.V3); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s4.Write(cur, v.V4); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}

type tuple6Schema[A, B, C, D, E, F any] struct {
	s0 Schema[A]
	s1 Schema[B]
	s2 Schema[C]
	s3 Schema[D]
	s4 Schema[E]
	s5 Schema[F]
}

// Tuple6Schema composes six schemas into one for a 6-element tuple.
func Tuple6Schema[A, B, C, D, E, F any](s0 Schema[A], s1 Schema[B], s2 Schema[C], s3 Schema[D], s4 Schema[E], s5 Schema[F]) Schema[Tuple6[A, B, C, D, E, F]] {
	return tuple6Schema[A, B, C, D, E, F]{s0, s1, s2, s3, s4, s5}
}

func (s tuple6Schema[A, B, C, D, E, F]) IsFixedSize() bool {
	return s.s0.IsFixedSize() && s.s1.IsFixedSize() && s.s2.IsFixedSize() && s.s3.IsFixedSize() && s.s4.IsFixedSize() && s.s5.IsFixedSize()
}

func (s tuple6Schema[A, B, C, D, E, F]) DynamicSize(v Tuple6[A, B, C, D, E, F]) int {
	return encoding.SizeChar +
		s.s0.DynamicSize(v.V0) + encoding.SizeChar +
		s.s1.DynamicSize(v.V1) + encoding.SizeChar +
		s.s2.DynamicSize(v.V2) + encoding.SizeChar +
		s.s3.DynamicSize(v.V3) + encoding.SizeChar +
		s.s4.DynamicSize(v.V4) + encoding.SizeChar +
		s.s5.DynamicSize(v.V5) + encoding.SizeChar
}

func (s tuple6Schema[A, B, C, D, E, F]) Read(cur *buffer.ReadCursor) (Tuple6[A, B, C, D, E, F], error) {
	var zero Tuple6[A, B, C, D, E, F]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v1, err := s.s1.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v2, err := s.s2.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v3, err := s.s3.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v4, err := s.s4.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v5, err := s.s5.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple6[A, B, C, D, E, F]{v0, v1, v2, v3, v4, v5}, nil
}

func (s tuple6Schema[A, B, C, D, E, F]) Write(cur *buffer.WriteCursor, v Tuple6[A, B, C, D, E, F]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s1.Write(cur, v.V1); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s2.Write(cur, v.V2); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s3.Write(cur, v.V3); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s4.Write(cur, v.V4); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s5.Write(cur, v.V5); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}

type tuple7Schema[A, B, C, D, E, F, G any] struct {
	s0 Schema[A]
	s1 Schema[B]
	s2 Schema[C]
	s3 Schema[D]
	s4 Schema[E]
	s5 Schema[F]
	s6 Schema[G]
}

// Tuple7Schema composes seven schemas into one for a 7-element tuple.
func Tuple7Schema[A, B, C, D, E, F, G any](s0 Schema[A], s1 Schema[B], s2 Schema[C], s3 Schema[D], s4 Schema[E], s5 Schema[F], s6 Schema[G]) Schema[Tuple7[A, B, C, D, E, F, G]] {
	return tuple7Schema[A, B, C, D, E, F, G]{s0, s1, s2, s3, s4, s5, s6}
}

func (s tuple7Schema[A, B, C, D, E, F, G]) IsFixedSize() bool {
	return s.s0.IsFixedSize() && s.s1.IsFixedSize() && s.s2.IsFixedSize() && s.s3.IsFixedSize() &&
		s.s4.IsFixedSize() && s.s5.IsFixedSize() && s.s6.IsFixedSize()
}

func (s tuple7Schema[A, B, C, D, E, F, G]) DynamicSize(v Tuple7[A, B, C, D, E, F, G]) int {
	return encoding.SizeChar +
		s.s0.DynamicSize(v.V0) + encoding.SizeChar +
		s.s1.DynamicSize(v.V1) + encoding.SizeChar +
		s.s2.DynamicSize(v.V2) + encoding.SizeChar +
		s.s3.DynamicSize(v.V3) + encoding.SizeChar +
		s.s4.DynamicSize(v.V4) + encoding.SizeChar +
		s.s5.DynamicSize(v.V5) + encoding.SizeChar +
		s.s6.DynamicSize(v.V6) + encoding.SizeChar
}

func (s tuple7Schema[A, B, C, D, E, F, G]) Read(cur *buffer.ReadCursor) (Tuple7[A, B, C, D, E, F, G], error) {
	var zero Tuple7[A, B, C, D, E, F, G]
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return zero, err
	}
	v0, err := s.s0.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v1, err := s.s1.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v2, err := s.s2.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v3, err := s.s3.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v4, err := s.s4.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v5, err := s.s5.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return zero, err
	}
	v6, err := s.s6.Read(cur)
	if err != nil {
		return zero, err
	}
	if err := encoding.ReadIndicator(cur, encoding.IndicatorTupleEnd); err != nil {
		return zero, err
	}
	return Tuple7[A, B, C, D, E, F, G]{v0, v1, v2, v3, v4, v5, v6}, nil
}

func (s tuple7Schema[A, B, C, D, E, F, G]) Write(cur *buffer.WriteCursor, v Tuple7[A, B, C, D, E, F, G]) error {
	if err := encoding.WriteIndicator(cur, encoding.IndicatorTupleStart); err != nil {
		return err
	}
	if err := s.s0.Write(cur, v.V0); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s1.Write(cur, v.V1); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s2.Write(cur, v.V2); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s3.Write(cur, v.V3); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s4.Write(cur, v.V4); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s5.Write(cur, v.V5); err != nil {
		return err
	}
	if err := encoding.WriteIndicator(cur, encoding.IndicatorPropSep); err != nil {
		return err
	}
	if err := s.s6.Write(cur, v.V6); err != nil {
		return err
	}
	return encoding.WriteIndicator(cur, encoding.IndicatorTupleEnd)
}
