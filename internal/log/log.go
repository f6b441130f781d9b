// Package log configures the process-wide structured logger. Diagnostics go
// to a rotating file in the data directory so they never corrupt the
// terminal timer display.
package log

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
)

// Init replaces the default slog handler with one writing JSON records to
// pathToFile.
func Init(pathToFile string, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   pathToFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
