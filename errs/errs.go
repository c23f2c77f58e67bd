// Package errs defines the small closed taxonomy of error kinds surfaced
// by every layer of blocktable, from container lifecycle down to schema
// decoding.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure so callers can branch on it with Is instead of
// string-matching messages.
type Kind int

const (
	// IndexOutOfRange is returned for reads/writes outside the valid
	// range, or for cursor/view overruns.
	IndexOutOfRange Kind = iota
	// InvalidArgument is returned for malformed constructor arguments:
	// non-positive block sizes, wrong-arity fixed arrays, double-close.
	InvalidArgument
	// NotFound is returned when a container does not exist.
	NotFound
	// AlreadyExists is returned when creating a container that exists.
	AlreadyExists
	// Corrupted is returned for malformed on-disk state: short headers,
	// missing structural indicators, non-digit bytes where a digit was
	// expected.
	Corrupted
	// IO wraps an underlying filesystem failure.
	IO
	// Closed is returned for any operation on a handle that has already
	// been closed.
	Closed
)

func (k Kind) String() string {
	switch k {
	case IndexOutOfRange:
		return "index out of range"
	case InvalidArgument:
		return "invalid argument"
	case NotFound:
		return "not found"
	case AlreadyExists:
		return "already exists"
	case Corrupted:
		return "corrupted"
	case IO:
		return "io"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by blocktable. Op names the
// failing operation (e.g. "blockstorage.Open"); Err is the underlying
// cause, wrapped via github.com/pkg/errors so the chain survives
// errors.Is/errors.As.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a *Error with no further wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.New(msg)}
}

// Wrap builds a *Error tagging an underlying cause with a kind and op.
func Wrap(kind Kind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Wrapf is Wrap with a formatted message prefixed onto the cause.
func Wrapf(kind Kind, op string, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: errors.Wrapf(err, format, args...)}
}

// Is reports whether err is a *Error of the given kind, anywhere in its
// wrap chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Err
			continue
		}
		type causer interface{ Cause() error }
		if c, ok := err.(causer); ok {
			err = c.Cause()
			continue
		}
		type unwrapper interface{ Unwrap() error }
		if u, ok := err.(unwrapper); ok {
			err = u.Unwrap()
			continue
		}
		return false
	}
	return false
}
