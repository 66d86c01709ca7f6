package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init initializes the logging system, writing logs to
// ~/.tablero/logs/tablero.log. Log output must never hit stdout or stderr
// while the TUI owns the terminal.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	logDir := filepath.Join(homeDir, ".tablero", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "tablero.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same file.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
