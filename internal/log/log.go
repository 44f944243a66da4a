// ABOUTME: Level-filtered logging for verbose mode output
// ABOUTME: Global level via SetLevel; stderr by default, or a rotating file so the TUI stays clean

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. A nil writer discards everything.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// OpenFile routes log output to a size-rotated file at path. While a Bubble
// Tea program owns the screen, anything written to stderr would corrupt it.
// The returned closer restores stderr output.
func OpenFile(path string) (io.Closer, error) {
	if path == "" {
		return nil, fmt.Errorf("opening log file: empty path")
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	if _, err := fmt.Fprintf(lj, "[INFO] log opened\n"); err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	SetOutput(lj)
	return closerFunc(func() error {
		SetOutput(os.Stderr)
		return lj.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func emit(prefix, format string, args []any) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	emit("[DEBUG] ", format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	emit("[INFO] ", format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	emit("[WARN] ", format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("[ERROR] ", format, args)
}
