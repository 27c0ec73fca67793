package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"floodwatch.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Debug("fetching", ports.F("location_id", 4))
	adapter.Info("stored", ports.F("forecast_id", 9))
	adapter.Warn("slow provider")
	adapter.Error("failed", ports.F("error", "timeout"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "stored", entry["msg"])
	assert.Equal(t, float64(9), entry["forecast_id"])

	require.NoError(t, json.Unmarshal([]byte(lines[3]), &entry))
	assert.Equal(t, "timeout", entry["error"])
}

func TestSlogLoggerAdapter_NilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	NewSlogLoggerAdapter(nil).Info("hello", ports.F("k", "v"))
	assert.Contains(t, buf.String(), "k=v")
}
