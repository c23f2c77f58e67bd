// Package obslog builds the default logger shared by blocktable's
// components. It is internal because it is wiring, not a public surface:
// callers configure logging via each component's WithLogger option.
package obslog

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
)

// New returns a tint-backed slog.Logger writing to f, colorized the same
// way mddb's cmd/mddb wires it up for its server logs.
func New(f *os.File) *slog.Logger {
	return slog.New(tint.NewHandler(colorable.NewColorable(f), &tint.Options{
		Level: slog.LevelWarn,
	}))
}

// Discard returns a logger that drops everything, used as the zero-value
// default so components never need a nil check before logging.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
