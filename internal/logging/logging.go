// Package logging routes slog output to a rotated log file
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvDebug enables debug-level logging when set to any value.
const EnvDebug = "MASTERY_DEBUG"

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// New returns a JSON logger that writes to the rotated file at path together
// with the writer that must be closed on exit.
func New(path string) (*slog.Logger, io.WriteCloser) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	level := slog.LevelInfo
	if _, ok := os.LookupEnv(EnvDebug); ok {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(h), w
}

// Setup installs the file logger as the default slog logger.
func Setup(path string) io.Closer {
	l, w := New(path)

	slog.SetDefault(l)

	return w
}
