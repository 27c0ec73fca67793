package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileLoggerAdapter writes JSON log lines to a dedicated file. Used for the
// provider request log so upstream traffic can be inspected apart from the
// application log.
type FileLoggerAdapter struct {
	*SlogLoggerAdapter
	file *os.File
	path string
}

// NewFileLoggerAdapter opens logPath for appending, creating parent directories
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &FileLoggerAdapter{
		SlogLoggerAdapter: NewSlogLoggerAdapter(slog.New(handler)),
		file:              file,
		path:              logPath,
	}, nil
}

// Path returns the file being written
func (f *FileLoggerAdapter) Path() string {
	return f.path
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	if err := f.file.Sync(); err != nil {
		_ = f.file.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	return f.file.Close()
}
