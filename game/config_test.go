package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 9\nheight: 9\nmines: 10\nmode: win7\nseed: 42\n"), 0644))

	config := NewGameConfig()
	require.NoError(t, LoadConfig(path, &config))

	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 9, config.Height)
	assert.Equal(t, 10, config.NumMines)
	assert.Equal(t, Win7, config.Mode)
	assert.Equal(t, int64(42), config.Seed)
	assert.NotNil(t, config.Logger)
	assert.NoError(t, config.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	config := NewGameConfig()
	assert.Error(t, LoadConfig(filepath.Join(dir, "missing.yaml"), &config))

	badMode := filepath.Join(dir, "mode.yaml")
	require.NoError(t, os.WriteFile(badMode, []byte("mode: win95\n"), 0644))
	assert.Error(t, LoadConfig(badMode, &config))

	unknownKey := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknownKey, []byte("colour: red\n"), 0644))
	assert.Error(t, LoadConfig(unknownKey, &config))
}

func TestGenerateReplayFilename(t *testing.T) {
	board := boardFromRows(t, "#O")
	config := testConfig(0, 0, 0)
	at := time.Date(2020, 3, 10, 22, 27, 45, 0, time.UTC)

	assert.Equal(t, "20200310_222745_other.yaml", config.generateReplayFilename(board, at))

	_, err := board.Reveal(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "20200310_222745_loss.yaml", config.generateReplayFilename(board, at))
}
