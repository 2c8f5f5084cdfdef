// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnvVar enables debug logging when set to any non-empty value.
const DebugEnvVar = "EQSHELL_DEBUG"

// Logger is the process-wide logger. It starts at Info level on stderr so
// library code can log before InitLogger runs.
var Logger = newLogger(os.Stderr, slog.LevelInfo)

// InitLogger initializes the global logger with appropriate log level.
// Set EQSHELL_DEBUG=1 to see the core requests and the signing loop.
func InitLogger() {
	level := slog.LevelInfo
	if os.Getenv(DebugEnvVar) != "" {
		level = slog.LevelDebug
	}
	Logger = newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		// Strip time and level for cleaner CLI output
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}

// Debug logs a debug message (only shown when EQSHELL_DEBUG is set)
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
