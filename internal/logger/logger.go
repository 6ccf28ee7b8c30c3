// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer matches zerr.Error's Metadata() accessor.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one link of an error chain: its own message and metadata.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// Logger is a leveled slog text logger. The zero level is WARN; SetVerbose
// lowers it to DEBUG.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
	level  *slog.LevelVar
	output io.Writer
}

// New creates a Logger writing to stderr at WARN.
func New() *Logger {
	l := &Logger{level: &slog.LevelVar{}}
	l.level.Set(slog.LevelWarn)
	l.SetOutput(os.Stderr)

	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       l.level,
		ReplaceAttr: dropTime,
	}))
}

// SetVerbose switches between DEBUG (true) and WARN (false).
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelWarn)
}

// Verbose reports whether debug records are emitted.
func (l *Logger) Verbose() bool {
	return l.level.Level() <= slog.LevelDebug
}

// Debug logs a debug message with key/value attributes.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs err with its cause chain flattened into the message and every
// zerr metadata pair attached as an attribute.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	entries := collectErrorEntries(err)

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(entries), metadataArgs(entries)...)
}

// collectErrorEntries walks the chain. zerr links contribute their own message;
// the first plain error contributes its full Error() text and ends the walk.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}
		e := errorEntry{message: m.Message()}
		if md, ok := current.(metadataer); ok {
			e.metadata = md.Metadata()
		}
		entries = append(entries, e)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders "outer: caused by inner: caused by root".
// Empty messages (metadata-only links) are skipped.
func formatErrorEntries(entries []errorEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.message == "" {
			continue
		}
		parts = append(parts, e.message)
	}

	return strings.Join(parts, ": caused by ")
}

// metadataArgs flattens the metadata of all entries into sorted slog args.
// Outer links win on duplicate keys.
func metadataArgs(entries []errorEntry) []any {
	merged := make(map[string]any)
	for i := len(entries) - 1; i >= 0; i-- {
		for k, v := range entries[i].metadata {
			merged[k] = v
		}
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, merged[k])
	}

	return args
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}
