package tabgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with tabgo-specific context.
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

// WithLayout adds a layout field to the logger.
func (l *Logger) WithLayout(layout Layout) *Logger {
	return &Logger{
		Logger: l.Logger.With("layout", layout.String()),
	}
}

// WithShape adds dataset shape fields to the logger.
func (l *Logger) WithShape(numRows, numCols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", numRows, "cols", numCols),
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(ctx context.Context, layout Layout, numRows, numCols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"layout", layout.String(),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"layout", layout.String(),
			"rows", numRows,
			"cols", numCols,
		)
	}
}

// LogQuery logs a query kernel execution.
func (l *Logger) LogQuery(layout Layout, kind QueryKind, duration time.Duration) {
	l.Debug("query completed",
		"layout", layout.String(),
		"query", kind.String(),
		"duration", duration,
	)
}

// LogUpdate logs an update kernel execution.
func (l *Logger) LogUpdate(layout Layout, updated int, duration time.Duration) {
	l.Debug("update completed",
		"layout", layout.String(),
		"updated", updated,
		"duration", duration,
	)
}
