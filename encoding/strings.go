package encoding

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/errs"
)

// StringSize returns the total encoded byte size of a string of length n:
// the Int32 length prefix, open quote, n characters, close quote.
func StringSize(n int) int {
	return SizeInt + SizeChar + SizeForString(n) + SizeChar
}

// WriteString encodes s as: Int32 length, '"', characters, '"'.
func WriteString(cur *buffer.WriteCursor, s string) error {
	if err := WriteInt32(cur, int32(len(s))); err != nil {
		return err
	}
	if err := WriteIndicator(cur, IndicatorStringQuote); err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		if err := WriteChar(cur, s[i]); err != nil {
			return err
		}
	}
	return WriteIndicator(cur, IndicatorStringQuote)
}

// ReadString decodes a string encoded by WriteString.
func ReadString(cur *buffer.ReadCursor) (string, error) {
	n, err := ReadInt32(cur)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errs.New(errs.Corrupted, op+".ReadString", "negative string length")
	}
	if err := ReadIndicator(cur, IndicatorStringQuote); err != nil {
		return "", err
	}
	chars, err := readChars(cur, int(n))
	if err != nil {
		return "", err
	}
	if err := ReadIndicator(cur, IndicatorStringQuote); err != nil {
		return "", err
	}
	return string(chars), nil
}
