package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUICORE_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex

	loggerPtr atomic.Pointer[slog.Logger]
)

func init() {
	loggerPtr.Store(newNopLogger())
	if path := os.Getenv(EnvVar); path != "" {
		_ = Init(path)
	}
}

func newNopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// Init routes debug logging to the file at path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	loggerPtr.Store(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// Close closes the debug log file and silences logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	loggerPtr.Store(newNopLogger())
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// SetLogger installs l as the debug logger. Pass nil to disable logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current debug logger. It is never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
