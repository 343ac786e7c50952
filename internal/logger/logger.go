package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile *os.File
	mu      sync.Mutex
)

const maxLogSize = 2 * 1024 * 1024

// Init opens (or creates) the session log file inside dir. Logging is a
// best-effort facility: when Init is never called, or fails, every log call
// is a no-op so the TUI keeps running.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	logPath := filepath.Join(dir, "gridls.log")

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		_ = os.Remove(oldPath)
		_ = os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	logFile = file
	mu.Unlock()
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Warn records a non-fatal problem (bad config value, duplicate binding).
func Warn(format string, args ...interface{}) {
	write("WARN", format, args...)
}

// Error records a recovered runtime failure.
func Error(format string, args ...interface{}) {
	write("ERROR", format, args...)
}

func write(level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s: %s\n", timestamp, level, msg)
}
