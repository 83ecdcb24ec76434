package calculation

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger is a minimal logging interface for the projection engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level filters WriterLogger output.
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
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// WriterLogger writes "[LEVEL] message" lines at or above a minimum level.
// It is safe for concurrent use.
type WriterLogger struct {
	out   *log.Logger
	level Level
}

// NewWriterLogger returns a logger writing to w. A nil writer discards everything.
func NewWriterLogger(w io.Writer, level Level) *WriterLogger {
	if w == nil {
		w = io.Discard
	}
	return &WriterLogger{out: log.New(w, "", 0), level: level}
}

func (wl *WriterLogger) logf(l Level, format string, args ...any) {
	if l < wl.level {
		return
	}
	wl.out.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func (wl *WriterLogger) Debugf(format string, args ...any) { wl.logf(LevelDebug, format, args...) }
func (wl *WriterLogger) Infof(format string, args ...any)  { wl.logf(LevelInfo, format, args...) }
func (wl *WriterLogger) Warnf(format string, args ...any)  { wl.logf(LevelWarn, format, args...) }
func (wl *WriterLogger) Errorf(format string, args ...any) { wl.logf(LevelError, format, args...) }
