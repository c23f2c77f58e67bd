package blockstorage

import (
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aeriksson/blocktable/errs"
)

// Handle is an open container: a file of equal-sized blocks, addressed by
// a logical block position translated to a byte offset.
//
// A Handle does not serialize concurrent ReadBlock/WriteBlock calls
// against each other; it is the caller's responsibility (in practice,
// pagedtable.Table) to keep at most one read and one write in flight per
// handle at a time.
type Handle struct {
	id        string
	file      *os.File
	blockSize int
	closed    bool

	logger *slog.Logger

	countMu    sync.Mutex
	blockCount uint64

	taskMu   sync.Mutex
	lastTask *errgroup.Group
}

func newHandle(id string, f *os.File, blockSize int, blockCount uint64, logger *slog.Logger) *Handle {
	return &Handle{
		id:         id,
		file:       f,
		blockSize:  blockSize,
		blockCount: blockCount,
		logger:     logger,
	}
}

// BlockSize returns the fixed size, in bytes, of every block in this
// container (including the header block).
func (h *Handle) BlockSize() int { return h.blockSize }

// BlockCount returns the current number of payload blocks (not counting
// the header block).
func (h *Handle) BlockCount() uint64 {
	h.countMu.Lock()
	defer h.countMu.Unlock()
	return h.blockCount
}

func (h *Handle) blockOffset(pos uint64) int64 {
	return headerPrefixSize + int64(h.blockSize) + int64(pos)*int64(h.blockSize)
}

// AsyncResult is a handle to a submitted, possibly still in-flight block
// read or write.
type AsyncResult struct {
	g *errgroup.Group
}

// Wait blocks until the submitted task completes and returns its error,
// if any.
func (a *AsyncResult) Wait() error {
	if a == nil || a.g == nil {
		return nil
	}
	return a.g.Wait()
}

// awaitLastTask blocks on whatever async task was most recently submitted
// against this handle, used by Storage.Close.
func (h *Handle) awaitLastTask() error {
	h.taskMu.Lock()
	g := h.lastTask
	h.taskMu.Unlock()
	if g == nil {
		return nil
	}
	return g.Wait()
}

func (h *Handle) submit(fn func() error) *AsyncResult {
	g := new(errgroup.Group)
	g.Go(fn)

	h.taskMu.Lock()
	h.lastTask = g
	h.taskMu.Unlock()

	return &AsyncResult{g: g}
}

// ReadBlock asynchronously reads the block at logical position pos into
// buf, which must have length BlockSize(). pos must be in [0, BlockCount()).
func (h *Handle) ReadBlock(pos uint64, buf []byte) (*AsyncResult, error) {
	const op = "blockstorage.Handle.ReadBlock"

	if h.closed {
		return nil, errs.New(errs.Closed, op, "handle closed: "+h.id)
	}
	if len(buf) != h.blockSize {
		return nil, errs.New(errs.InvalidArgument, op, "buffer length must equal block size")
	}
	if pos >= h.BlockCount() {
		return nil, errs.New(errs.IndexOutOfRange, op, "read position beyond block count")
	}

	offset := h.blockOffset(pos)
	return h.submit(func() error {
		if _, err := h.file.ReadAt(buf, offset); err != nil {
			return errs.Wrapf(errs.IO, op, err, "read block %d of %q", pos, h.id)
		}
		return nil
	}), nil
}

// WriteBlock asynchronously writes buf to the block at logical position
// pos, which must have length BlockSize(). pos must be in
// [0, BlockCount()]; pos == BlockCount() extends the container by one
// block.
func (h *Handle) WriteBlock(pos uint64, buf []byte) (*AsyncResult, error) {
	const op = "blockstorage.Handle.WriteBlock"

	if h.closed {
		return nil, errs.New(errs.Closed, op, "handle closed: "+h.id)
	}
	if len(buf) != h.blockSize {
		return nil, errs.New(errs.InvalidArgument, op, "buffer length must equal block size")
	}

	h.countMu.Lock()
	count := h.blockCount
	if pos > count {
		h.countMu.Unlock()
		return nil, errs.New(errs.IndexOutOfRange, op, "write position beyond block count")
	}
	extend := pos == count
	if extend {
		h.blockCount = count + 1
	}
	h.countMu.Unlock()

	offset := h.blockOffset(pos)
	return h.submit(func() error {
		if _, err := h.file.WriteAt(buf, offset); err != nil {
			return errs.Wrapf(errs.IO, op, err, "write block %d of %q", pos, h.id)
		}
		return nil
	}), nil
}

// ReadHeader reads the container's application-writable header block
// (exactly BlockSize() bytes) into buf.
func (h *Handle) ReadHeader(buf []byte) error {
	const op = "blockstorage.Handle.ReadHeader"
	if h.closed {
		return errs.New(errs.Closed, op, "handle closed: "+h.id)
	}
	if len(buf) != h.blockSize {
		return errs.New(errs.InvalidArgument, op, "buffer length must equal block size")
	}
	if _, err := h.file.ReadAt(buf, headerPrefixSize); err != nil {
		return errs.Wrapf(errs.IO, op, err, "read header block of %q", h.id)
	}
	return nil
}

// WriteHeader synchronously persists the container's header block.
// Unlike payload blocks, the header is written synchronously since it is
// only ever touched at open/close boundaries, not on the data hot path.
func (h *Handle) WriteHeader(buf []byte) error {
	const op = "blockstorage.Handle.WriteHeader"
	if h.closed {
		return errs.New(errs.Closed, op, "handle closed: "+h.id)
	}
	if len(buf) != h.blockSize {
		return errs.New(errs.InvalidArgument, op, "buffer length must equal block size")
	}
	if _, err := h.file.WriteAt(buf, headerPrefixSize); err != nil {
		return errs.Wrapf(errs.IO, op, err, "write header block of %q", h.id)
	}
	return nil
}

// ID returns the handle's normalized container identifier.
func (h *Handle) ID() string { return h.id }
