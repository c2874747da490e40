package crossglyph

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/crossglyph/crossglyph/engine"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for crossglyph and its engine packages.
// By default, crossglyph produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by crossglyph:
//   - [slog.LevelDebug]: per-call diagnostics (computed metrics, fallback hits)
//   - [slog.LevelInfo]: lifecycle events (system font scan, analysis failures)
//   - [slog.LevelWarn]: non-fatal degradation (fallback capability unavailable)
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	crossglyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to every engine opened so far.
	enginesMu.Lock()
	engines := make([]engine.Engine, len(openedEngines))
	copy(engines, openedEngines)
	enginesMu.Unlock()
	for _, eng := range engines {
		propagateLogger(eng, l)
	}
}

// Logger returns the current logger used by crossglyph.
// Engine packages call this to share the same logger configuration without
// introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
