package quartz

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for quartz and all its sub-packages.
// By default quartz produces no log output. Pass nil to restore the
// silent default.
//
// The logger is also handed to gg, so surface and accelerator
// diagnostics end up in the same place.
//
// Log levels used by quartz:
//   - [slog.LevelDebug]: degraded paths (clipboard misses, unmapped input, title decode failures)
//   - [slog.LevelInfo]: lifecycle (window opened, navigation, shutdown)
//   - [slog.LevelWarn]: per-frame failures (surface creation, present)
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
