package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// formatterHandler adapts a LogFormatter to slog.Handler, so the Logger's
// slog-based API can be driven by any of TextFormatter, JSONFormatter or
// ColorFormatter instead of only slog's own built-in handlers.
type formatterHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	formatter LogFormatter
	level     slog.Leveler
	prefix    string            // group-name prefix applied to every attr key
	base      map[string]interface{} // attrs accumulated via WithAttrs/WithGroup
}

func newFormatterHandler(w io.Writer, formatter LogFormatter, level slog.Leveler) *formatterHandler {
	return &formatterHandler{
		mu:        &sync.Mutex{},
		w:         w,
		formatter: formatter,
		level:     level,
		base:      map[string]interface{}{},
	}
}

func (h *formatterHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

func (h *formatterHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make(map[string]interface{}, len(h.base)+record.NumAttrs())
	for k, v := range h.base {
		fields[k] = v
	}
	record.Attrs(func(a slog.Attr) bool {
		fields[h.prefix+a.Key] = a.Value.Any()
		return true
	})

	entry := LogEntry{
		Timestamp: record.Time,
		Level:     levelFromSlog(record.Level),
		Message:   record.Message,
		Fields:    fields,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, h.formatter.Format(entry))
	return err
}

func (h *formatterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &formatterHandler{
		mu:        h.mu,
		w:         h.w,
		formatter: h.formatter,
		level:     h.level,
		prefix:    h.prefix,
		base:      make(map[string]interface{}, len(h.base)+len(attrs)),
	}
	for k, v := range h.base {
		next.base[k] = v
	}
	for _, a := range attrs {
		next.base[h.prefix+a.Key] = a.Value.Any()
	}
	return next
}

func (h *formatterHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelFromSlog(l slog.Level) LogLevel {
	switch {
	case l < slog.LevelInfo:
		return DEBUG
	case l < slog.LevelWarn:
		return INFO
	case l < slog.LevelError:
		return WARN
	default:
		return ERROR
	}
}
