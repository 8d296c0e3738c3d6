package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Navigate_to_example_com", sanitize("Navigate to example.com"))
	assert.Equal(t, "task", sanitize("!!!"))
	assert.LessOrEqual(t, len(sanitize(strings.Repeat("a", 200))), 60)
}

func TestNewAdapter_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig("test task")
	cfg.LogDir = dir
	cfg.Console = false

	log, err := NewAdapter(cfg)
	require.NoError(t, err)

	log.Info("agent started", "task", "test task")
	log.WithField("iteration", 1).Debug("iteration started")
	require.NoError(t, log.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "test_task")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "agent started")
	assert.Contains(t, string(data), `"task":"test task"`)
}

func TestNewAdapter_NoFileWithoutTaskName(t *testing.T) {
	cfg := Config{Level: "info"}

	log, err := NewAdapter(cfg)
	require.NoError(t, err)
	defer log.Close()

	// Must not panic without any configured core.
	log.Info("noop")
}
