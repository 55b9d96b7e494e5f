package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/drift-arena/constants"
)

// Logger wraps slog with a rotating file sink
// The terminal owns stdout/stderr while running, so logs never go there
type Logger struct {
	*slog.Logger
	LogFile string

	sink io.Closer
}

// ParseLevel maps a level name onto slog
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log: invalid level %q", level)
}

// New returns a logger writing JSON records to dir/drift-arena.slog
// With debug false all output is discarded
func New(debug bool, level, dir string) (*Logger, error) {
	if !debug {
		return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = constants.LogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("log: create %s: %w", dir, err)
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.LogFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
	}

	l := &Logger{
		Logger:  slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})),
		LogFile: w.Filename,
		sink:    w,
	}
	l.Info("logging started",
		slog.String("GOOS", runtime.GOOS),
		slog.String("GOARCH", runtime.GOARCH),
		slog.Int("NumCPU", runtime.NumCPU()))
	return l, nil
}

// Debug and Info are dropped on a nil *Logger; Warn and Error fall back to the default slog logger
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
		return
	}
	l.Logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
		return
	}
	l.Logger.Error(msg, args...)
}

// Close flushes and closes the file sink; safe on nil and discard loggers
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	err := l.sink.Close()
	l.sink = nil
	return err
}
