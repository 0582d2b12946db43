package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/rentacar/internal/adapters/outbound/logger"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	cleanup, err := logger.Setup(logger.Config{DataDir: dir})
	require.NoError(t, err)

	logger.L().Info("rental.completed", "car", "c1")
	assert.Equal(t, filepath.Join(dir, ".rentacar", "logs", "rentacar.log"), logger.Path())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(filepath.Join(dir, ".rentacar", "logs", "rentacar.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "rental.completed", rec["msg"])
	assert.Equal(t, "c1", rec["car"])
}

func TestSetup_DebugLevel(t *testing.T) {
	dir := t.TempDir()

	cleanup, err := logger.Setup(logger.Config{DataDir: dir, Debug: true})
	require.NoError(t, err)
	logger.L().Debug("lookup.started")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(filepath.Join(dir, ".rentacar", "logs", "rentacar.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "lookup.started")
	assert.Contains(t, string(data), `"source"`)
}

func TestCleanup_RestoresDiscard(t *testing.T) {
	cleanup, err := logger.Setup(logger.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, cleanup())

	assert.Empty(t, logger.Path())
	assert.NotNil(t, logger.L())
}
