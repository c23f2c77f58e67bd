// Package table maps a logical record index onto one or two paged byte
// tables, using a schema.Schema to encode/decode each record. Fixed-size
// schemas are addressed by multiplication; variable-size schemas go
// through an index stream of (start, length) entries pointing into a
// data stream.
package table

import (
	"log/slog"
	"sync"

	"github.com/aeriksson/blocktable/buffer"
	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/internal/obslog"
	"github.com/aeriksson/blocktable/pagedtable"
	"github.com/aeriksson/blocktable/schema"
)

const op = "table"

// Option configures a Table at construction.
type Option func(*settings)

type settings struct {
	logger  *slog.Logger
	metrics *Metrics
}

// WithLogger overrides the table's default (discard) logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithMetrics registers prometheus counters the table increments as it
// runs.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// Table maps a logical record index to a byte region in one or two
// underlying paged byte tables, via schema sch.
type Table[V any] struct {
	mu sync.Mutex

	sch schema.Schema[V]

	byteTable  *pagedtable.Table // fixed layout
	indexTable *pagedtable.Table // variable layout
	dataTable  *pagedtable.Table // variable layout

	fixedSize int // S, only meaningful in fixed layout

	logger  *slog.Logger
	metrics *Metrics
}

// Fixed constructs a Table backed by a single paged byte table, using
// the fixed layout: record i lives at byte offset i·S, where
// S = sch.DynamicSize(zero value of V). sch must be fixed size.
func Fixed[V any](sch schema.Schema[V], byteTable *pagedtable.Table, opts ...Option) (*Table[V], error) {
	if !sch.IsFixedSize() {
		return nil, errs.New(errs.InvalidArgument, op+".Fixed", "schema is not fixed size")
	}
	cfg := &settings{logger: obslog.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}
	var zero V
	return &Table[V]{
		sch:       sch,
		byteTable: byteTable,
		fixedSize: sch.DynamicSize(zero),
		logger:    cfg.logger,
		metrics:   cfg.metrics,
	}, nil
}

// Variable constructs a Table backed by two paged byte tables: an index
// stream of (start, length) entries and a data stream of encoded
// payloads appended as records are written.
func Variable[V any](sch schema.Schema[V], indexTable, dataTable *pagedtable.Table, opts ...Option) (*Table[V], error) {
	cfg := &settings{logger: obslog.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Table[V]{
		sch:        sch,
		indexTable: indexTable,
		dataTable:  dataTable,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
	}, nil
}

func (t *Table[V]) isVariable() bool { return t.indexTable != nil }

// Len returns the number of records currently stored.
func (t *Table[V]) Len() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.isVariable() {
		return t.indexTable.ElementCount() / uint64(indexEntrySize)
	}
	return t.byteTable.ElementCount() / uint64(t.fixedSize)
}

// Read decodes and returns the record at logical index i, which must be
// in [0, Len()).
func (t *Table[V]) Read(i uint64) (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero V
	if t.isVariable() {
		return t.readVariable(i)
	}
	return t.readFixed(i, zero)
}

func (t *Table[V]) readFixed(i uint64, zero V) (V, error) {
	length := t.byteTable.ElementCount() / uint64(t.fixedSize)
	if i >= length {
		return zero, errs.New(errs.IndexOutOfRange, op+".Read", "read position beyond record count")
	}

	raw, err := readRange(t.byteTable, i*uint64(t.fixedSize), t.fixedSize)
	if err != nil {
		return zero, err
	}
	t.metricRead()
	return t.decode(raw)
}

func (t *Table[V]) readVariable(i uint64) (V, error) {
	var zero V
	length := t.indexTable.ElementCount() / uint64(indexEntrySize)
	if i >= length {
		return zero, errs.New(errs.IndexOutOfRange, op+".Read", "read position beyond record count")
	}

	rawEntry, err := readRange(t.indexTable, i*uint64(indexEntrySize), indexEntrySize)
	if err != nil {
		return zero, err
	}
	entry, err := decodeIndexEntry(rawEntry)
	if err != nil {
		return zero, err
	}
	if entry.start < 0 || entry.length < 0 {
		return zero, errs.New(errs.Corrupted, op+".Read", "negative index entry")
	}

	raw, err := readRange(t.dataTable, uint64(entry.start), int(entry.length))
	if err != nil {
		return zero, err
	}
	t.metricRead()
	return t.decode(raw)
}

func (t *Table[V]) decode(raw []byte) (V, error) {
	var zero V
	b := buffer.New(len(raw))
	copy(b.Bytes(), raw)
	cur := b.ReadCursorFrom(0, len(raw))
	v, err := t.sch.Read(cur)
	if err != nil {
		return zero, errs.Wrap(errs.Corrupted, op+".decode", err)
	}
	return v, nil
}

// Write encodes v and stores it at logical index i, which must be in
// [0, Len()]; writing at i == Len() appends a new record.
func (t *Table[V]) Write(i uint64, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.isVariable() {
		return t.writeVariable(i, v)
	}
	return t.writeFixed(i, v)
}

func (t *Table[V]) writeFixed(i uint64, v V) error {
	length := t.byteTable.ElementCount() / uint64(t.fixedSize)
	if i > length {
		return errs.New(errs.IndexOutOfRange, op+".Write", "write position beyond record count")
	}

	size := t.sch.DynamicSize(v)
	if size != t.fixedSize {
		return errs.New(errs.InvalidArgument, op+".Write", "encoded size does not match fixed record size")
	}

	encoded, err := t.encode(v, size)
	if err != nil {
		return err
	}
	if err := writeRange(t.byteTable, i*uint64(t.fixedSize), encoded); err != nil {
		return err
	}
	t.metricWrite()
	return nil
}

func (t *Table[V]) writeVariable(i uint64, v V) error {
	length := t.indexTable.ElementCount() / uint64(indexEntrySize)
	if i > length {
		return errs.New(errs.IndexOutOfRange, op+".Write", "write position beyond record count")
	}

	size := t.sch.DynamicSize(v)
	encoded, err := t.encode(v, size)
	if err != nil {
		return err
	}

	start := t.dataTable.ElementCount()
	entry := indexEntry{start: int64(start), length: int32(size)}
	if err := writeRange(t.indexTable, i*uint64(indexEntrySize), encodeIndexEntry(entry)); err != nil {
		return err
	}
	if err := writeRange(t.dataTable, start, encoded); err != nil {
		return err
	}
	t.metricWrite()
	return nil
}

func (t *Table[V]) encode(v V, size int) ([]byte, error) {
	b := buffer.New(size)
	cur := b.WriteCursorFrom(0, size)
	if err := t.sch.Write(cur, v); err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, op+".encode", err)
	}
	return append([]byte(nil), b.Bytes()...), nil
}

// Close closes the underlying paged byte table(s), persisting their
// header blocks.
func (t *Table[V]) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logger.Debug("table closed", "variable", t.isVariable())

	if t.isVariable() {
		errIndex := t.indexTable.Close()
		errData := t.dataTable.Close()
		if errIndex != nil {
			t.logger.Warn("index table close failed", "err", errIndex)
			return errIndex
		}
		if errData != nil {
			t.logger.Warn("data table close failed", "err", errData)
		}
		return errData
	}
	return t.byteTable.Close()
}
