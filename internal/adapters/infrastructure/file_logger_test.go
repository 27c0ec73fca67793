package infrastructure

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"floodwatch.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestNewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		logPath     func(dir string) string
		expectError string
	}{
		{
			name:    "valid_path",
			logPath: func(dir string) string { return filepath.Join(dir, "openweather.log") },
		},
		{
			name:    "nested_path",
			logPath: func(dir string) string { return filepath.Join(dir, "nested", "deep", "openweather.log") },
		},
		{
			name:        "empty_path",
			logPath:     func(string) string { return "" },
			expectError: "log file path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.logPath(t.TempDir())
			logger, err := NewFileLoggerAdapter(path)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Nil(t, logger)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, logger.Path())
			require.NoError(t, logger.Close())
			_, statErr := os.Stat(path)
			assert.NoError(t, statErr)
		})
	}
}

func TestFileLoggerAdapter_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provider.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Debug("Provider request", ports.F("provider", "openweather"), ports.F("lat", -6.8))
	logger.Error("Provider request failed", ports.F("status", 401))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "Provider request", entries[0]["msg"])
	assert.Equal(t, "openweather", entries[0]["provider"])
	assert.Equal(t, -6.8, entries[0]["lat"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, float64(401), entries[1]["status"])
}

func TestFileLoggerAdapter_AppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provider.log")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLoggerAdapter(path)
		require.NoError(t, err)
		logger.Info("entry", ports.F("n", i))
		require.NoError(t, logger.Close())
	}

	assert.Len(t, readLogLines(t, path), 2)
}

func TestFileLoggerAdapter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provider.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.Warn("concurrent", ports.F("n", i))
		}(i)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readLogLines(t, path), 20)
}
