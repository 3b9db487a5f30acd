package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "main-service", "production", "debug")

	logger.Debug("stats backend unreachable", "uri", "/events/7")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "main-service", record["service"])
	assert.Equal(t, "stats backend unreachable", record["msg"])
	assert.Equal(t, "/events/7", record["uri"])
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "stats-service", "development", "warn")

	logger.Info("hit recorded")
	assert.Empty(t, buf.Bytes())

	logger.Warn("slow query")
	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), "service=stats-service")
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "main-service", "development", "verbose")

	logger.Debug("ignored")
	assert.Empty(t, buf.Bytes())

	logger.Info("listening")
	assert.Contains(t, buf.String(), "listening")
}
