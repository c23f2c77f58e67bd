// Package pagedtable implements a synchronous, random-access byte table
// over a blockstorage container, using an LRU page cache with one-ahead
// read prefetch and one-in-flight write drain, plus a hot-path last-page
// fast cell for locality.
package pagedtable

import (
	"encoding/binary"
	"log/slog"
	"sync"

	"github.com/aeriksson/blocktable/blockstorage"
	"github.com/aeriksson/blocktable/cache"
	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/internal/obslog"
)

const op = "pagedtable"

// pending tracks a single in-flight background block I/O.
type pending struct {
	active bool
	id     uint64
	res    *blockstorage.AsyncResult
	buf    []byte
}

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

// WithMetrics registers prometheus counters the table and its cache
// increment as they run.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// Table is a synchronous, per-byte random-access view over a
// blockstorage.Handle.
type Table struct {
	mu sync.Mutex

	handle *blockstorage.Handle
	cache  *cache.Cache[uint64, *Page]

	elementCount uint64

	lastAccessed *Page

	bgRead  pending
	bgWrite pending

	recycled [][]byte

	headerBuf []byte

	logger  *slog.Logger
	metrics *Metrics

	// err is sticky: once a background drain fails, the table is
	// considered non-recoverable and every subsequent call returns it.
	err error
}

// Open constructs a Table over handle, with an LRU page cache of the
// given capacity (must be > 2, per cache.New).
func Open(handle *blockstorage.Handle, cacheCapacity int, opts ...Option) (*Table, error) {
	cfg := &settings{logger: obslog.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}

	t := &Table{
		handle:  handle,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}

	blockSize := handle.BlockSize()
	t.headerBuf = make([]byte, blockSize)
	if err := handle.ReadHeader(t.headerBuf); err != nil {
		return nil, errs.Wrap(errs.IO, op+".Open", err)
	}
	if len(t.headerBuf) >= 8 {
		t.elementCount = binary.LittleEndian.Uint64(t.headerBuf[:8])
	}

	var cacheOpts []cache.Option
	if cfg.metrics != nil {
		cacheOpts = append(cacheOpts, cache.WithMetrics(cfg.metrics.Cache))
	}

	c, err := cache.New[uint64, *Page](cacheCapacity, t.loadPage, t.unloadPage, cacheOpts...)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, op+".Open", err)
	}
	t.cache = c

	return t, nil
}

// ElementCount returns the table's current logical length in bytes.
func (t *Table) ElementCount() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elementCount
}

// LastAccessedBlock returns the id of the block served by the hot-path
// fast cell, if any page has been accessed yet.
func (t *Table) LastAccessedBlock() (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lastAccessed == nil {
		return 0, false
	}
	return t.lastAccessed.ID, true
}

func (t *Table) blockSize() int { return t.handle.BlockSize() }

// Read returns the byte at logical position i, which must be in
// [0, ElementCount()).
func (t *Table) Read(i uint64) (byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return 0, t.err
	}
	if i >= t.elementCount {
		return 0, errs.New(errs.IndexOutOfRange, op+".Read", "read position beyond element count")
	}

	page, off, err := t.pageFor(i)
	if err != nil {
		return 0, err
	}
	return page.Bytes[off], nil
}

// Write sets the byte at logical position i, which must be in
// [0, ElementCount()]; writing at i == ElementCount() appends.
func (t *Table) Write(i uint64, v byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return t.err
	}
	if i > t.elementCount {
		return errs.New(errs.IndexOutOfRange, op+".Write", "write position beyond element count")
	}

	page, off, err := t.pageFor(i)
	if err != nil {
		return err
	}
	page.Bytes[off] = v
	page.Modified = true

	if i == t.elementCount {
		t.elementCount++
	}
	return nil
}

// pageFor resolves the page covering logical byte i, consulting the
// hot-path fast cell before falling back to the LRU cache.
func (t *Table) pageFor(i uint64) (*Page, uint64, error) {
	blockSize := uint64(t.blockSize())
	bid := i / blockSize
	off := i % blockSize

	if t.lastAccessed != nil && t.lastAccessed.ID == bid {
		return t.lastAccessed, off, nil
	}

	page, err := t.cache.Get(bid)
	if err != nil {
		t.setErr(err)
		return nil, 0, err
	}
	t.lastAccessed = page
	return page, off, nil
}

func (t *Table) setErr(err error) {
	if t.err == nil {
		t.err = err
	}
}

// Close flushes dirty pages (via cache.Clear, which drives unloadPage),
// drains any still-pending background write, and persists the element
// count into the header block.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cache.Clear()

	if t.bgWrite.active {
		if err := t.bgWrite.res.Wait(); err != nil {
			t.setErr(errs.Wrap(errs.IO, op+".Close", err))
		}
		t.bgWrite = pending{}
	}
	if t.bgRead.active {
		if err := t.bgRead.res.Wait(); err != nil {
			t.setErr(errs.Wrap(errs.IO, op+".Close", err))
		}
		t.bgRead = pending{}
	}

	if t.err != nil {
		return t.err
	}

	binary.LittleEndian.PutUint64(t.headerBuf[:8], t.elementCount)
	if err := t.handle.WriteHeader(t.headerBuf); err != nil {
		wrapped := errs.Wrap(errs.IO, op+".Close", err)
		t.setErr(wrapped)
		return wrapped
	}

	t.logger.Debug("table closed", "element_count", t.elementCount)
	return nil
}
