package geminisdk

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loggerFor resolves the logger for a query: an explicitly configured logger
// wins, GEMINI_SDK_DEBUG enables a stderr logger at the named level
// (DEBUG, INFO, WARN, ERROR; any other value means DEBUG), otherwise silent.
func loggerFor(options *GeminiOptions) *slog.Logger {
	if options.Logger != nil {
		return options.Logger
	}

	env := os.Getenv("GEMINI_SDK_DEBUG")
	if env == "" {
		return NopLogger()
	}

	level := slog.LevelDebug

	switch strings.ToUpper(env) {
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
