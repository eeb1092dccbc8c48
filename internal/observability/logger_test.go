package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/folio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerWithoutSinksIsNop(t *testing.T) {
	log, err := NewLogger(config.LoggerConfig{Level: "info"}, nil)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(config.LoggerConfig{Level: "loud"}, nil)
	assert.Error(t, err)
}

func TestNewLoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	log, err := NewLogger(config.LoggerConfig{Level: "debug", File: path, MaxSize: 1}, nil)
	require.NoError(t, err)

	log.Named("ui").Info("console mounted", zap.Int("lines", 3))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "console mounted", entry["msg"])
	assert.Equal(t, "folio.ui", entry["logger"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 3, entry["lines"])
}

func TestNewLoggerConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(config.LoggerConfig{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
