package dmath

import (
	"context"
	"log/slog"
)

// LogSink writes diagnostics as structured warnings.
// The zero value logs through slog.Default().
type LogSink struct {
	Logger *slog.Logger
}

// Log implements Sink.
func (s LogSink) Log(rt Runtime, category, name, msg, val string) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	attrs := []slog.Attr{
		slog.String("category", category),
		slog.String("name", name),
		slog.String("message", msg),
		slog.String("value", val),
	}
	if rt != nil {
		attrs = append(attrs,
			slog.String("runtime", rt.Name()),
			slog.Float64("time", rt.Time()),
			slog.String("phase", rt.Phase().String()),
		)
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, "domain violation", attrs...)
}
