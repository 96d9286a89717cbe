package schedgo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/schedgo/schedgo/record"
)

// Logger wraps slog.Logger with schedgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKey adds a composite-key field to the logger.
func (l *Logger) WithKey(key record.Key) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key.String()),
	}
}

// WithCategory adds a category field to the logger.
func (l *Logger) WithCategory(category string) *Logger {
	return &Logger{
		Logger: l.Logger.With("category", category),
	}
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, count int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"records", count,
			"elapsed", elapsed,
		)
	}
}

// LogFetch logs a record fetch.
func (l *Logger) LogFetch(ctx context.Context, key record.Key, cached bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"key", key.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fetch completed",
			"key", key.String(),
			"cached", cached,
		)
	}
}
