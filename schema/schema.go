// Package schema provides compositional descriptors for how a value type
// is laid out in bytes: primitives, strings, tuples of arity 1-7, and
// fixed/variable arrays, each exposing IsFixedSize, DynamicSize, Read,
// and Write. Node types are generic over their value type, so values
// are statically typed end to end; calls from a composite node to its
// children go through the Schema[V] interface.
package schema

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/encoding"
	"github.com/aeriksson/blocktable/errs"
)

const op = "schema"

// Schema describes how values of type V are encoded to and decoded from
// a byte cursor.
type Schema[V any] interface {
	// IsFixedSize reports whether every value of V encodes to the same
	// number of bytes.
	IsFixedSize() bool
	// DynamicSize returns the exact encoded byte size of v. For a
	// fixed-size schema this is independent of v.
	DynamicSize(v V) int
	// Read decodes a V from cur, advancing it by exactly DynamicSize(v)
	// bytes.
	Read(cur *buffer.ReadCursor) (V, error)
	// Write encodes v into cur, advancing it by exactly DynamicSize(v)
	// bytes.
	Write(cur *buffer.WriteCursor, v V) error
}

type byteSchema struct{}

// Byte describes an 8-bit unsigned value.
func Byte() Schema[uint8] { return byteSchema{} }

func (byteSchema) IsFixedSize() bool       { return true }
func (byteSchema) DynamicSize(uint8) int   { return encoding.SizeByte }
func (byteSchema) Read(cur *buffer.ReadCursor) (uint8, error) {
	return encoding.ReadByteVal(cur)
}
func (byteSchema) Write(cur *buffer.WriteCursor, v uint8) error {
	return encoding.WriteByteVal(cur, v)
}

type int32Schema struct{}

// Int32 describes a 32-bit signed value.
func Int32() Schema[int32] { return int32Schema{} }

func (int32Schema) IsFixedSize() bool      { return true }
func (int32Schema) DynamicSize(int32) int  { return encoding.SizeInt }
func (int32Schema) Read(cur *buffer.ReadCursor) (int32, error) {
	return encoding.ReadInt32(cur)
}
func (int32Schema) Write(cur *buffer.WriteCursor, v int32) error {
	return encoding.WriteInt32(cur, v)
}

type int64Schema struct{}

// Int64 describes a 64-bit signed value.
func Int64() Schema[int64] { return int64Schema{} }

func (int64Schema) IsFixedSize() bool      { return true }
func (int64Schema) DynamicSize(int64) int  { return encoding.SizeLong }
func (int64Schema) Read(cur *buffer.ReadCursor) (int64, error) {
	return encoding.ReadInt64(cur)
}
func (int64Schema) Write(cur *buffer.WriteCursor, v int64) error {
	return encoding.WriteInt64(cur, v)
}

type stringSchema struct{}

// String describes a variable-length string.
func String() Schema[string] { return stringSchema{} }

func (stringSchema) IsFixedSize() bool { return false }
func (stringSchema) DynamicSize(s string) int {
	return encoding.StringSize(len(s))
}
func (stringSchema) Read(cur *buffer.ReadCursor) (string, error) {
	return encoding.ReadString(cur)
}
func (stringSchema) Write(cur *buffer.WriteCursor, v string) error {
	return encoding.WriteString(cur, v)
}

// errCorrupted is a small helper to keep call sites short.
func errCorrupted(opName, msg string) error {
	return errs.New(errs.Corrupted, opName, msg)
}
