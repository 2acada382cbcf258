package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger builds a text logger writing to stderr and, if logPath is set,
// appending to that file as well. The returned function closes the file.
func newLogger(level string, logPath string) (*slog.Logger, func() error, error) {
	slogLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, logFile)
		closeFn = logFile.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), closeFn, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
