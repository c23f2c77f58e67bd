package encoding

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/errs"
)

// formatFixedWidth renders value as a right-justified, space-padded
// decimal exactly width characters wide. Digits are produced from the
// magnitude starting with the least significant, then reversed, so that
// the widest negative long (-2^63) is representable without overflowing
// an intermediate magnitude computation.
func formatFixedWidth(value int64, width int) []byte {
	chars := make([]byte, 0, width)

	if value == 0 {
		chars = append(chars, '0')
	} else {
		neg := value < 0
		var mag uint64
		if neg {
			// Avoids negating math.MinInt64, which would overflow.
			mag = uint64(-(value + 1)) + 1
		} else {
			mag = uint64(value)
		}
		digits := make([]byte, 0, width)
		for mag > 0 {
			digits = append(digits, byte('0'+mag%10))
			mag /= 10
		}
		for i := len(digits) - 1; i >= 0; i-- {
			chars = append(chars, digits[i])
		}
		if neg {
			chars = append([]byte{'-'}, chars...)
		}
	}

	for len(chars) < width {
		chars = append([]byte{' '}, chars...)
	}
	return chars
}

// parseFixedWidth parses a width-character right-justified decimal,
// accumulating against a negated total so that -2^63 is representable.
func parseFixedWidth(chars []byte) (int64, error) {
	i := 0
	for i < len(chars) && chars[i] == ' ' {
		i++
	}

	neg := false
	if i < len(chars) && chars[i] == '-' {
		neg = true
		i++
	}

	if i >= len(chars) {
		return 0, errs.New(errs.Corrupted, op+".parseFixedWidth", "expected digit, found end of field")
	}

	var acc int64
	sawDigit := false
	for ; i < len(chars); i++ {
		c := chars[i]
		if c < '0' || c > '9' {
			return 0, errs.New(errs.Corrupted, op+".parseFixedWidth", "expected digit, found '"+string(c)+"'")
		}
		acc = acc*10 - int64(c-'0')
		sawDigit = true
	}
	if !sawDigit {
		return 0, errs.New(errs.Corrupted, op+".parseFixedWidth", "expected at least one digit")
	}

	if neg {
		return acc, nil
	}
	return -acc, nil
}

func writeChars(cur *buffer.WriteCursor, chars []byte) error {
	for _, c := range chars {
		if err := WriteChar(cur, c); err != nil {
			return err
		}
	}
	return nil
}

func readChars(cur *buffer.ReadCursor, n int) ([]byte, error) {
	chars := make([]byte, n)
	for i := 0; i < n; i++ {
		c, err := ReadChar(cur)
		if err != nil {
			return nil, err
		}
		chars[i] = c
	}
	return chars, nil
}

// WriteByteVal writes an 8-bit unsigned value in a SizeByte-wide field.
func WriteByteVal(cur *buffer.WriteCursor, v uint8) error {
	return writeChars(cur, formatFixedWidth(int64(v), charsByte))
}

// ReadByteVal reads an 8-bit unsigned value from a SizeByte-wide field.
func ReadByteVal(cur *buffer.ReadCursor) (uint8, error) {
	chars, err := readChars(cur, charsByte)
	if err != nil {
		return 0, err
	}
	v, err := parseFixedWidth(chars)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 255 {
		return 0, errs.New(errs.Corrupted, op+".ReadByteVal", "value out of byte range")
	}
	return uint8(v), nil
}

// WriteInt32 writes a 32-bit signed value in a SizeInt-wide field.
func WriteInt32(cur *buffer.WriteCursor, v int32) error {
	return writeChars(cur, formatFixedWidth(int64(v), charsInt))
}

// ReadInt32 reads a 32-bit signed value from a SizeInt-wide field.
func ReadInt32(cur *buffer.ReadCursor) (int32, error) {
	chars, err := readChars(cur, charsInt)
	if err != nil {
		return 0, err
	}
	v, err := parseFixedWidth(chars)
	if err != nil {
		return 0, err
	}
	if v < int64(-1<<31) || v > int64(1<<31-1) {
		return 0, errs.New(errs.Corrupted, op+".ReadInt32", "value out of int32 range")
	}
	return int32(v), nil
}

// WriteInt64 writes a 64-bit signed value in a SizeLong-wide field.
func WriteInt64(cur *buffer.WriteCursor, v int64) error {
	return writeChars(cur, formatFixedWidth(v, charsLong))
}

// ReadInt64 reads a 64-bit signed value from a SizeLong-wide field.
func ReadInt64(cur *buffer.ReadCursor) (int64, error) {
	chars, err := readChars(cur, charsLong)
	if err != nil {
		return 0, err
	}
	return parseFixedWidth(chars)
}

// WriteOffset writes the '@' offset marker followed by a SizeInt field.
func WriteOffset(cur *buffer.WriteCursor, v int32) error {
	if err := WriteIndicator(cur, IndicatorOffset); err != nil {
		return err
	}
	return WriteInt32(cur, v)
}

// ReadOffset reads and verifies the '@' offset marker, then a SizeInt
// field.
func ReadOffset(cur *buffer.ReadCursor) (int32, error) {
	if err := ReadIndicator(cur, IndicatorOffset); err != nil {
		return 0, err
	}
	return ReadInt32(cur)
}

// WriteReference writes the '*' reference marker followed by a SizeLong
// field.
func WriteReference(cur *buffer.WriteCursor, v int64) error {
	if err := WriteIndicator(cur, IndicatorReference); err != nil {
		return err
	}
	return WriteInt64(cur, v)
}

// ReadReference reads and verifies the '*' reference marker, then a
// SizeLong field.
func ReadReference(cur *buffer.ReadCursor) (int64, error) {
	if err := ReadIndicator(cur, IndicatorReference); err != nil {
		return 0, err
	}
	return ReadInt64(cur)
}
