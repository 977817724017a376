package ggbutton

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package logger. Accessed atomically so that
// SetLogger can be called while decorators on other UI threads log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the default logger for ggbutton.
// By default, ggbutton produces no log output. Decorators created without
// [WithLogger] pick up the logger current at the time they log.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by ggbutton:
//   - [slog.LevelDebug]: interaction state transitions, paint passes
//   - [slog.LevelInfo]: widgets decorated and restored
//   - [slog.LevelWarn]: failed surface operations, parent chain exhaustion
//
// Example:
//
//	ggbutton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
// Subpackages (ggsurface, integration/ggwindow) share it through this call.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
