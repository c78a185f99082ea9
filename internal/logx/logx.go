package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"oralog/internal/paths"
)

var nowFunc = time.Now

// New creates a logger writing to a timestamped file under the
// user-level run-log directory (~/.oralog/logs). The returned closer
// should be closed when the run ends.
func New() (*log.Logger, io.Closer, error) {
	dir, err := paths.LogsDir()
	if err != nil {
		return nil, nil, err
	}

	filename := nowFunc().Format("20060102-150405") + ".log"
	filePath := filepath.Join(dir, filename)
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open run log: %w", err)
	}

	logger := log.New(file, "", log.LstdFlags|log.Lmicroseconds)
	return logger, file, nil
}

// Discard returns a logger that drops everything, for callers that have
// no run log (tests, degraded startup).
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
