// Package blockstorage implements a file-backed workspace of named
// containers: equal-sized blocks with an in-band, application-writable
// header block, addressed through async block reads/writes.
package blockstorage

import (
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aeriksson/blocktable/errs"
	"github.com/aeriksson/blocktable/identifier"
	"github.com/aeriksson/blocktable/internal/obslog"
)

// headerPrefixSize is the 4 little-endian bytes at the start of every
// container file that record the block size.
const headerPrefixSize = 4

// Option configures a Storage at construction, following the same
// functional-options shape as the teacher's bitcask.Option.
type Option func(*Storage)

// WithLogger overrides the storage's default (discard) logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) { s.logger = l }
}

// WithSeparator overrides the path separator used to translate '/' in
// identifiers into directory components. Defaults to os.PathSeparator.
func WithSeparator(sep byte) Option {
	return func(s *Storage) { s.sep = sep }
}

// Storage is a rooted workspace of containers, each keyed by a normalized
// identifier. A Storage instance owns its own open-set; there is no
// global/shared state across instances.
type Storage struct {
	root string
	sep  byte

	mu   sync.Mutex
	open map[string]*Handle

	logger *slog.Logger
}

// Open roots a Storage at dir, creating it if necessary. It does not
// scan or open any containers eagerly.
func Open(dir string, opts ...Option) (*Storage, error) {
	const op = "blockstorage.Open"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrapf(errs.IO, op, err, "create workspace root %q", dir)
	}

	s := &Storage{
		root:   dir,
		sep:    os.PathSeparator,
		open:   make(map[string]*Handle),
		logger: obslog.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug("workspace opened", "root", dir)
	return s, nil
}

func (s *Storage) path(normalized string) string {
	return filepath.Join(s.root, normalized)
}

// Exists reports whether a container with the given identifier has a
// backing file, regardless of whether it is currently open.
func (s *Storage) Exists(id string) bool {
	normalized, err := identifier.Normalize(id, s.sep)
	if err != nil {
		return false
	}
	_, err = os.Stat(s.path(normalized))
	return err == nil
}

// Create makes a new container file with the given block size and opens
// it. It fails AlreadyExists if the container's file already exists, and
// InvalidArgument if blockSize is not positive.
func (s *Storage) Create(id string, blockSize int) (*Handle, error) {
	const op = "blockstorage.Create"

	if blockSize <= 0 {
		return nil, errs.New(errs.InvalidArgument, op, "block size must be positive")
	}

	normalized, err := identifier.Normalize(id, s.sep)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fullPath := s.path(normalized)
	if _, statErr := os.Stat(fullPath); statErr == nil {
		return nil, errs.New(errs.AlreadyExists, op, "container already exists: "+normalized)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, errs.Wrapf(errs.IO, op, err, "create container directory for %q", normalized)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errs.Wrapf(errs.IO, op, err, "create container file %q", normalized)
	}

	sizeHeader := make([]byte, headerPrefixSize)
	binary.LittleEndian.PutUint32(sizeHeader, uint32(blockSize))
	if _, err := f.WriteAt(sizeHeader, 0); err != nil {
		f.Close()
		os.Remove(fullPath)
		return nil, errs.Wrapf(errs.IO, op, err, "write block-size header for %q", normalized)
	}

	// Reserved header block is zero-filled explicitly rather than relying
	// on the platform's sparse-file zero-fill guarantee.
	zeroHeader := make([]byte, blockSize)
	if _, err := f.WriteAt(zeroHeader, headerPrefixSize); err != nil {
		f.Close()
		os.Remove(fullPath)
		return nil, errs.Wrapf(errs.IO, op, err, "write zeroed header block for %q", normalized)
	}

	h := newHandle(normalized, f, blockSize, 0, s.logger)
	s.open[normalized] = h
	s.logger.Debug("container created", "id", normalized, "block_size", blockSize)
	return h, nil
}

// Open opens an existing container. Within one Storage instance, Open is
// idempotent: repeated calls for the same identifier return the same
// *Handle. It fails NotFound if the container's file does not exist and
// Corrupted if the file is too short to contain a block-size header.
func (s *Storage) Open(id string) (*Handle, error) {
	const op = "blockstorage.Open"

	normalized, err := identifier.Normalize(id, s.sep)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.open[normalized]; ok {
		return h, nil
	}

	fullPath := s.path(normalized)
	f, err := os.OpenFile(fullPath, os.O_RDWR, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New(errs.NotFound, op, "container not found: "+normalized)
		}
		return nil, errs.Wrapf(errs.IO, op, err, "open container %q", normalized)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errs.Wrapf(errs.IO, op, err, "stat container %q", normalized)
	}
	if info.Size() < headerPrefixSize {
		f.Close()
		return nil, errs.New(errs.Corrupted, op, "container header shorter than 4 bytes: "+normalized)
	}

	sizeHeader := make([]byte, headerPrefixSize)
	if _, err := f.ReadAt(sizeHeader, 0); err != nil {
		f.Close()
		return nil, errs.Wrapf(errs.Corrupted, op, err, "read block-size header for %q", normalized)
	}
	blockSize := int(int32(binary.LittleEndian.Uint32(sizeHeader)))
	if blockSize <= 0 {
		f.Close()
		return nil, errs.New(errs.Corrupted, op, "non-positive block size in header for "+normalized)
	}

	payloadBytes := info.Size() - headerPrefixSize - int64(blockSize)
	if payloadBytes < 0 {
		f.Close()
		return nil, errs.New(errs.Corrupted, op, "container shorter than its own header block: "+normalized)
	}
	blockCount := uint64(payloadBytes / int64(blockSize))

	h := newHandle(normalized, f, blockSize, blockCount, s.logger)
	s.open[normalized] = h
	s.logger.Debug("container opened", "id", normalized, "block_size", blockSize, "block_count", blockCount)
	return h, nil
}

// Close releases h, awaiting its last submitted async task first.
func (s *Storage) Close(h *Handle) error {
	const op = "blockstorage.Close"

	s.mu.Lock()
	defer s.mu.Unlock()

	if h.closed {
		return errs.New(errs.InvalidArgument, op, "container already closed: "+h.id)
	}

	if err := h.awaitLastTask(); err != nil {
		return errs.Wrap(errs.IO, op, err)
	}
	if err := h.file.Close(); err != nil {
		return errs.Wrap(errs.IO, op, err)
	}
	h.closed = true
	delete(s.open, h.id)
	s.logger.Debug("container closed", "id", h.id)
	return nil
}

// Delete closes h (if still open) and removes its backing file.
func (s *Storage) Delete(h *Handle) error {
	const op = "blockstorage.Delete"

	if !h.closed {
		if err := s.Close(h); err != nil {
			return err
		}
	}

	fullPath := s.path(h.id)
	if err := os.Remove(fullPath); err != nil {
		return errs.Wrapf(errs.IO, op, err, "remove container file %q", h.id)
	}
	s.logger.Debug("container deleted", "id", h.id)
	return nil
}
