package table

import (
	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/encoding"
)

// indexEntry is the variable-layout index record: the byte offset and
// length of one record's payload in the data stream. It carries no
// structural indicators of its own (unlike schema-encoded values) since
// its width must be exactly SizeLong + SizeInt for len() to divide
// evenly.
type indexEntry struct {
	start  int64
	length int32
}

// indexEntrySize is the fixed width, in bytes, of one indexEntry record.
const indexEntrySize = encoding.SizeLong + encoding.SizeInt

func encodeIndexEntry(e indexEntry) []byte {
	b := buffer.New(indexEntrySize)
	w := b.WriteCursorFrom(0, indexEntrySize)
	// Errors are impossible here: the cursor is sized exactly to what
	// WriteInt64/WriteInt32 consume.
	_ = encoding.WriteInt64(w, e.start)
	_ = encoding.WriteInt32(w, e.length)
	return append([]byte(nil), b.Bytes()...)
}

func decodeIndexEntry(raw []byte) (indexEntry, error) {
	b := buffer.New(indexEntrySize)
	copy(b.Bytes(), raw)
	r := b.ReadCursorFrom(0, indexEntrySize)
	start, err := encoding.ReadInt64(r)
	if err != nil {
		return indexEntry{}, err
	}
	length, err := encoding.ReadInt32(r)
	if err != nil {
		return indexEntry{}, err
	}
	return indexEntry{start: start, length: length}, nil
}
