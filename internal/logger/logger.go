package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var Logger = newLogger(os.Stderr, slog.LevelInfo)

// output is the log file opened by Setup, nil while logging to stderr.
var output *os.File

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup replaces the package logger. An empty file keeps logging on stderr,
// otherwise records are appended to file, creating its directory first.
// A log file opened by an earlier Setup is closed.
func Setup(level, file string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	if file == "" {
		err := Close()
		Logger = newLogger(os.Stderr, lvl)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", file, err)
	}

	Logger = newLogger(logFile, lvl)
	previous := output
	output = logFile
	if previous != nil {
		return previous.Close()
	}
	return nil
}

// Close closes the log file opened by Setup and falls back to stderr.
func Close() error {
	if output == nil {
		return nil
	}
	file := output
	output = nil
	Logger = newLogger(os.Stderr, slog.LevelInfo)
	return file.Close()
}

// ParseLevel maps a config level name to a slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
