package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "BACKER_DEBUG"

var (
	out      io.Writer
	file     *os.File
	resolved bool
	mu       sync.Mutex
)

// Init opens path for appending and directs debug output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	resolved = true

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

	closeLocked()
	file = f
	out = f
	return nil
}

// SetOutput directs debug output to w. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	resolved = true
	out = w
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	out = nil
	return err
}

func closeLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Enabled reports whether debug output is active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	return out != nil
}

// resolveLocked consults BACKER_DEBUG the first time logging is used.
func resolveLocked() {
	if resolved {
		return
	}
	resolved = true
	if path := os.Getenv(EnvVar); path != "" {
		initLocked(path)
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	resolveLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if file != nil {
		file.Sync()
	}
}
