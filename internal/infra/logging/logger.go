// Package logging provides file-based logging for git-todo.
// Entries are written in logfmt to a single file so they never
// interfere with the terminal UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/runoshun/git-todo/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps charmbracelet/log with lazily opened file output.
// Fields are ordered to minimize memory padding.
type Logger struct {
	out   io.Writer
	file  *os.File
	base  *log.Logger
	path  string
	mu    sync.Mutex
	level log.Level
}

// New creates a Logger that appends to the file at path.
// If path is empty, logging is disabled.
func New(path string, level log.Level) *Logger {
	return &Logger{
		path:  path,
		level: level,
	}
}

// NewWithWriter creates a Logger that writes to w.
func NewWithWriter(w io.Writer, level log.Level) *Logger {
	return &Logger{
		out:   w,
		level: level,
	}
}

// ParseLevel parses a log level string.
// Unknown values fall back to info.
func ParseLevel(levelStr string) log.Level {
	switch levelStr {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Enabled reports whether entries are written anywhere.
func (l *Logger) Enabled() bool {
	return l.out != nil || l.path != ""
}

// ensureLogger opens the log file on first use and returns the backing logger.
func (l *Logger) ensureLogger() (*log.Logger, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.base != nil {
		return l.base, nil
	}

	w := l.out
	if w == nil {
		if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		w = f
	}

	l.base = log.NewWithOptions(w, log.Options{
		Level:           l.level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	return l.base, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.base = nil
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// log writes one entry. taskID 0 is recorded as "global".
func (l *Logger) log(level log.Level, taskID int, category, msg string) {
	if !l.Enabled() {
		return
	}
	if level < l.level {
		return
	}

	base, err := l.ensureLogger()
	if err != nil {
		return
	}

	scope := "global"
	if taskID > 0 {
		scope = fmt.Sprintf("task-%d", taskID)
	}
	base.Log(level, msg, "scope", scope, "category", category)
}

// Info logs an info message.
func (l *Logger) Info(taskID int, category, msg string) {
	l.log(log.InfoLevel, taskID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID int, category, msg string) {
	l.log(log.DebugLevel, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID int, category, msg string) {
	l.log(log.WarnLevel, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID int, category, msg string) {
	l.log(log.ErrorLevel, taskID, category, msg)
}
