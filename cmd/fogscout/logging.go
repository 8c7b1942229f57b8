package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fogscout/internal/config"
)

// logger is the command-level logger, configured from --log-level.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "fogscout",
})

func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// tuiLogger returns a logger that writes to ~/.fogscout/fogscout.log while a
// Bubble Tea program owns the terminal. It discards output if the file
// cannot be opened. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	l := log.NewWithOptions(io.Discard, log.Options{
		ReportTimestamp: true,
		Prefix:          "fogscout",
		Level:           logger.GetLevel(),
	})

	home, err := os.UserHomeDir()
	if err != nil {
		return l, func() {}
	}
	dir := filepath.Join(home, config.HomeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return l, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "fogscout.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return l, func() {}
	}
	l.SetOutput(f)
	return l, func() { f.Close() }
}
