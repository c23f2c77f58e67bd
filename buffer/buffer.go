// Package buffer provides a reusable, growable byte array with
// cursor-style and bulk-copy views over it. Views never own memory; they
// hold a pointer to the owning Buffer, so they index its current backing
// array even after growth reallocates it.
package buffer

import "github.com/aeriksson/blocktable/errs"

const op = "buffer"

// Buffer owns a growable byte array. Its capacity only ever grows.
type Buffer struct {
	data []byte
}

// New returns a Buffer with the given initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// Capacity returns the current length of the backing array.
func (b *Buffer) Capacity() int { return len(b.data) }

// Resize grows the buffer so that Capacity() >= n, doubling the current
// capacity until it is large enough. If ignoreContent is false, existing
// content is copied into the new array; if true, the new array starts
// zeroed and existing content is dropped.
func (b *Buffer) Resize(n int, ignoreContent bool) {
	if n <= len(b.data) {
		return
	}
	newCap := len(b.data)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < n {
		newCap *= 2
	}
	next := make([]byte, newCap)
	if !ignoreContent {
		copy(next, b.data)
	}
	b.data = next
}

// Bytes returns the full backing array. Callers must not retain it across
// a Resize.
func (b *Buffer) Bytes() []byte { return b.data }

// ReadCursor is a byte-at-a-time read view over [start, end) of the
// buffer's current backing array.
type ReadCursor struct {
	buf        *Buffer
	start, end int
	pos        int
}

// WriteCursor is a byte-at-a-time write view over [start, end) of the
// buffer's current backing array.
type WriteCursor struct {
	buf        *Buffer
	start, end int
	pos        int
}

// ReadCursorFrom returns a ReadCursor over [start, end) of b's current
// array. end defaults to b.Capacity() when negative.
func (b *Buffer) ReadCursorFrom(start, end int) *ReadCursor {
	if end < 0 {
		end = len(b.data)
	}
	return &ReadCursor{buf: b, start: start, end: end, pos: start}
}

// WriteCursorFrom returns a WriteCursor over [start, end) of b's current
// array. end defaults to b.Capacity() when negative.
func (b *Buffer) WriteCursorFrom(start, end int) *WriteCursor {
	if end < 0 {
		end = len(b.data)
	}
	return &WriteCursor{buf: b, start: start, end: end, pos: start}
}

// Reset re-anchors a cursor against the buffer's current (possibly
// reallocated) array, preserving its relative position. Resize does not
// call it: cursors reach the array through their *Buffer, so they already
// see the current array after a Resize.
func (b *Buffer) Reset(c interface{ setBuf(*Buffer) }) {
	c.setBuf(b)
}

func (c *ReadCursor) setBuf(b *Buffer) { c.buf = b }
func (c *WriteCursor) setBuf(b *Buffer) { c.buf = b }

// Pos returns the cursor's current offset into the buffer's array.
func (c *ReadCursor) Pos() int { return c.pos }
func (c *WriteCursor) Pos() int { return c.pos }

// Next reads the byte at the cursor and advances it by one.
func (c *ReadCursor) Next() (byte, error) {
	if c.pos >= c.end {
		return 0, errs.New(errs.IndexOutOfRange, op+".ReadCursor.Next", "cursor overrun")
	}
	v := c.buf.data[c.pos]
	c.pos++
	return v, nil
}

// Next writes v at the cursor and advances it by one.
func (c *WriteCursor) Next(v byte) error {
	if c.pos >= c.end {
		return errs.New(errs.IndexOutOfRange, op+".WriteCursor.Next", "cursor overrun")
	}
	c.buf.data[c.pos] = v
	c.pos++
	return nil
}

// At returns the byte at absolute buffer offset i, which must lie within
// the cursor's [start, end) window.
func (c *ReadCursor) At(i int) (byte, error) {
	if i < c.start || i >= c.end {
		return 0, errs.New(errs.IndexOutOfRange, op+".ReadCursor.At", "index outside cursor window")
	}
	return c.buf.data[i], nil
}

// MoveForward advances the cursor by n bytes without reading/writing.
func (c *ReadCursor) MoveForward(n int) error {
	if c.pos+n > c.end || c.pos+n < c.start {
		return errs.New(errs.IndexOutOfRange, op+".ReadCursor.MoveForward", "move overruns cursor window")
	}
	c.pos += n
	return nil
}

// MoveForward advances the cursor by n bytes without reading/writing.
func (c *WriteCursor) MoveForward(n int) error {
	if c.pos+n > c.end || c.pos+n < c.start {
		return errs.New(errs.IndexOutOfRange, op+".WriteCursor.MoveForward", "move overruns cursor window")
	}
	c.pos += n
	return nil
}

// BlockReader bulk-copies len bytes starting at the cursor's current
// position into dst, advancing the cursor by len(dst).
func (c *ReadCursor) BlockReader(dst []byte) error {
	if c.pos+len(dst) > c.end {
		return errs.New(errs.IndexOutOfRange, op+".ReadCursor.BlockReader", "bulk read overruns cursor window")
	}
	copy(dst, c.buf.data[c.pos:c.pos+len(dst)])
	c.pos += len(dst)
	return nil
}

// BlockWriter bulk-copies src into the buffer at the cursor's current
// position, advancing the cursor by len(src).
func (c *WriteCursor) BlockWriter(src []byte) error {
	if c.pos+len(src) > c.end {
		return errs.New(errs.IndexOutOfRange, op+".WriteCursor.BlockWriter", "bulk write overruns cursor window")
	}
	copy(c.buf.data[c.pos:c.pos+len(src)], src)
	c.pos += len(src)
	return nil
}
