// Package encoding implements the human-readable ASCII codec: every
// character is a 16-bit little-endian code unit, integers are fixed-width
// right-justified decimals, and composite values are framed with
// read-and-verify structural indicators. The trade is space for
// debuggability: a hex dump of a container is legible, and the fixed
// layout can address records by multiplication alone.
package encoding

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/errs"
)

const op = "encoding"

// Character widths, in characters (not bytes): the decimal representation
// of the type's most extreme value.
const (
	charsByte = 3  // len("255")
	charsInt  = 11 // len("-2147483648")
	charsLong = 20 // len("-9223372036854775808")
)

// Byte sizes of each primitive, matching spec.md §4.6 exactly.
const (
	SizeChar      = 2
	SizeByte      = 2 * charsByte
	SizeInt       = 2 * charsInt
	SizeLong      = 2 * charsLong
	SizeOffset    = SizeChar + SizeInt
	SizeReference = SizeChar + SizeLong
)

// Structural indicator characters. Decoration only: read-and-verify,
// sizes counted, no parsing decision depends on them beyond the verify
// itself.
const (
	IndicatorArrayStart  = '['
	IndicatorArrayEnd    = ']'
	IndicatorTupleStart  = '('
	IndicatorTupleEnd    = ')'
	IndicatorStringQuote = '"'
	IndicatorPropSep     = ','
	IndicatorArraySep    = ','
	indicatorObjSepCR    = '\r'
	indicatorObjSepLF    = '\n'
	IndicatorReference   = '*'
	IndicatorOffset      = '@'
)

// SizeForString returns the byte size of a string's character payload
// alone (excluding its length prefix and quotes).
func SizeForString(n int) int { return n * SizeChar }

// WriteChar writes a single ASCII character as one 16-bit little-endian
// code unit (low byte = c, high byte = 0).
func WriteChar(cur *buffer.WriteCursor, c byte) error {
	if err := cur.Next(c); err != nil {
		return err
	}
	return cur.Next(0)
}

// ReadChar reads one 16-bit little-endian code unit and returns its low
// byte, failing Corrupted if the high byte is non-zero (this codec only
// ever emits characters in the ASCII range).
func ReadChar(cur *buffer.ReadCursor) (byte, error) {
	lo, err := cur.Next()
	if err != nil {
		return 0, err
	}
	hi, err := cur.Next()
	if err != nil {
		return 0, err
	}
	if hi != 0 {
		return 0, errs.New(errs.Corrupted, op+".ReadChar", "non-ASCII code unit")
	}
	return lo, nil
}

// WriteIndicator writes a structural indicator character.
func WriteIndicator(cur *buffer.WriteCursor, c byte) error {
	return WriteChar(cur, c)
}

// ReadIndicator reads a character and verifies it equals want, failing
// Corrupted on mismatch.
func ReadIndicator(cur *buffer.ReadCursor, want byte) error {
	got, err := ReadChar(cur)
	if err != nil {
		return err
	}
	if got != want {
		return errs.New(errs.Corrupted, op+".ReadIndicator", "expected indicator '"+string(want)+"', got '"+string(got)+"'")
	}
	return nil
}

// WriteObjectSeparator writes the two-character "\r\n" object separator.
func WriteObjectSeparator(cur *buffer.WriteCursor) error {
	if err := WriteChar(cur, indicatorObjSepCR); err != nil {
		return err
	}
	return WriteChar(cur, indicatorObjSepLF)
}

// ReadObjectSeparator reads and verifies the "\r\n" object separator.
func ReadObjectSeparator(cur *buffer.ReadCursor) error {
	if err := ReadIndicator(cur, indicatorObjSepCR); err != nil {
		return err
	}
	return ReadIndicator(cur, indicatorObjSepLF)
}
