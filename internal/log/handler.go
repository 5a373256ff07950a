package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// counts is shared between a CountingHandler and every handler derived from
// it through WithAttrs or WithGroup.
type counts struct {
	mu     sync.Mutex
	levels map[slog.Level]int
}

func (c *counts) add(level slog.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels[level]++
}

// CountingHandler wraps an slog.Handler and counts the records passed to it
// per level. Only records enabled on the underlying handler are counted.
type CountingHandler struct {
	// handler is the underlying slog handler that receives every record.
	handler slog.Handler

	counts *counts
}

// NewCountingHandler creates a new CountingHandler wrapping the given handler.
// If handler is nil, the returned CountingHandler uses slog.Default().Handler().
func NewCountingHandler(handler slog.Handler) *CountingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &CountingHandler{
		handler: handler,
		counts:  &counts{levels: make(map[slog.Level]int)},
	}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle counts the record and passes it to the underlying handler.
func (h *CountingHandler) Handle(ctx context.Context, r slog.Record) error {
	h.counts.add(r.Level)
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes added.
// The returned handler shares counters with h.
func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CountingHandler{handler: h.handler.WithAttrs(attrs), counts: h.counts}
}

// WithGroup returns a new handler with the given group name.
// The returned handler shares counters with h.
func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{handler: h.handler.WithGroup(name), counts: h.counts}
}

// Count returns the number of records handled at exactly the given level.
func (h *CountingHandler) Count(level slog.Level) int {
	h.counts.mu.Lock()
	defer h.counts.mu.Unlock()
	return h.counts.levels[level]
}

// level returns the minimum level for the verbose setting.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger writing to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	logger, _ := NewCountingLogger(w, verbose)
	return logger
}

// NewCountingLogger is like NewLogger but also returns the CountingHandler
// so callers can inspect how many records were emitted per level.
func NewCountingLogger(w io.Writer, verbose bool) (*slog.Logger, *CountingHandler) {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}

	textHandler := slog.NewTextHandler(w, opts)
	counting := NewCountingHandler(textHandler)

	return slog.New(counting), counting
}

// NewJSONLogger is like NewCountingLogger but writes JSON records.
// Useful when diagnostics are consumed by another tool.
func NewJSONLogger(w io.Writer, verbose bool) (*slog.Logger, *CountingHandler) {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	counting := NewCountingHandler(slog.NewJSONHandler(w, opts))

	return slog.New(counting), counting
}
