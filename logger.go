package wordseg

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with wordseg-specific context.
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

// WithTextLen adds an input length field to the logger.
func (l *Logger) WithTextLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("text_len", n),
	}
}

// WithLimit adds a maximum word length field to the logger.
func (l *Logger) WithLimit(limit int) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// LogSegment logs a segmentation operation.
func (l *Logger) LogSegment(textLen, words int, err error) {
	if err != nil {
		l.Error("segment failed",
			"text_len", textLen,
			"error", err,
		)
	} else {
		l.Debug("segment completed",
			"text_len", textLen,
			"words", words,
		)
	}
}

// LogCacheHit logs a segmentation served from the result cache.
func (l *Logger) LogCacheHit(textLen, words int) {
	l.Debug("segment served from cache",
		"text_len", textLen,
		"words", words,
	)
}
