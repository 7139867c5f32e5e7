package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
)

// setupLogging configures the default logger for console commands.
func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(true)
	log.SetPrefix("match3")
	return nil
}

// fileLogger returns a logger writing to ~/.match3/match3.log, for use while
// a Bubble Tea program owns the terminal. The close func must be called on exit.
// Logging is discarded if the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	logger := log.NewWithOptions(io.Discard, log.Options{
		Level:           log.GetLevel(),
		ReportTimestamp: true,
		Prefix:          "match3",
	})

	dir := config.UserDir()
	if dir == "" {
		return logger, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot create log directory", "dir", dir, "err", err)
		return logger, func() {}
	}

	path := filepath.Join(dir, "match3.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Warn("cannot open log file", "path", path, "err", err)
		return logger, func() {}
	}

	logger.SetOutput(f)
	return logger, func() { f.Close() }
}
