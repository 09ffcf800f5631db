// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/libpack/internal/core/domain"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a Logger writing colored output to stderr at the given level.
func New(level domain.LogLevel) *Logger {
	l := &Logger{level: slog.Level(level)}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	handler := NewPrettyHandler(w, &slog.HandlerOptions{
		Level: l.level,
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	entries := collectErrorEntries(err)
	attrs := subjectAttrs(entries)
	msg := formatErrorEntries(entries)

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// subjectAttrs moves the library and step metadata of the chain into attributes,
// taking the outermost value of each. Matching values deeper in the chain are dropped.
func subjectAttrs(entries []ErrorEntry) []slog.Attr {
	var attrs []slog.Attr
	for _, key := range []string{KeyLibrary, KeyStep} {
		var value any
		found := false
		for _, entry := range entries {
			v, ok := entry.Metadata[key]
			if !ok {
				continue
			}
			if !found {
				value, found = v, true
			}
			if fmt.Sprint(v) == fmt.Sprint(value) {
				delete(entry.Metadata, key)
			}
		}
		if found {
			attrs = append(attrs, slog.Any(key, value))
		}
	}
	return attrs
}
