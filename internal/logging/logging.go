// Package logging provides the leveled, structured logger used by the CLI,
// the catalog loaders and the explorer.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelInfo:
		return slog.LevelInfo
	default:
		// above every level: nothing is emitted
		return slog.LevelError + 4
	}
}

// ParseLevel parses a log level string. Unknown values map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled logger backed by log/slog. Messages take slog-style
// key/value pairs.
type Logger struct {
	mu    sync.Mutex
	level *slog.LevelVar
	attrs []any
	sl    *slog.Logger
}

// New creates a logger writing text records to stderr.
func New(level Level) *Logger {
	l := &Logger{level: new(slog.LevelVar)}
	l.level.Set(level.slog())
	l.sl = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l.level}))
	return l
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sl = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level})).With(l.attrs...)
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slog())
}

// With returns a logger that adds args to every record. The child shares the
// parent's level.
func (l *Logger) With(args ...any) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	attrs := append(append([]any{}, l.attrs...), args...)
	return &Logger{level: l.level, attrs: attrs, sl: l.sl.With(args...)}
}

// Enabled reports whether records at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return l.current().Enabled(context.Background(), level.slog())
}

func (l *Logger) current() *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sl
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.current().Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.current().Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.current().Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.current().Error(msg, args...)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	l := &Logger{level: new(slog.LevelVar)}
	l.level.Set(Level(LevelError + 1).slog())
	l.sl = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: l.level}))
	return l
}
