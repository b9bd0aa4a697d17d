package smath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// nopLogger is initialized with the package variables, before any init()
// function runs, so the dispatch code can log during its own init.
var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger. A nil value means nopLogger.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger for smath and its sub-packages.
// By default smath produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by smath:
//   - [slog.LevelDebug]: backend hooks installed or overridden, SIMD level chosen
//
// Example:
//
//	smath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by smath.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
