package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweeper/game"
)

// resetFlags puts every flag back to its default, as if the command had
// never been run
func resetFlags(t *testing.T) {
	t.Helper()

	gameConfig = game.NewGameConfig()
	for _, flags := range []*pflag.FlagSet{rootCmd.Flags(), rootCmd.PersistentFlags(), replayCmd.Flags()} {
		flags.VisitAll(func(flag *pflag.Flag) {
			require.NoError(t, flag.Value.Set(flag.DefValue))
			flag.Changed = false
		})
	}
}

func TestPlayAndReplay(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	rootCmd.SetArgs([]string{
		"-w", "5", "-h", "5", "-m", "3",
		"-g", "3", "-d", "random", "--seed", "9",
		"--snapshots-dir", dir, "--log-level", "error",
	})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	rootCmd.SetArgs([]string{"replay", filepath.Join(dir, entries[0].Name()), "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())
}

func TestConfigFileAndFlags(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 7\nheight: 6\nmines: 5\nmode: win7\n"), 0644))

	rootCmd.SetArgs([]string{"--config", path, "-m", "4", "-g", "1", "--seed", "3", "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 7, gameConfig.Width)
	assert.Equal(t, 6, gameConfig.Height)
	assert.Equal(t, 4, gameConfig.NumMines)
	assert.Equal(t, game.Win7, gameConfig.Mode)
}

func TestNewDirector(t *testing.T) {
	_, err := newDirector("random")
	assert.NoError(t, err)
	_, err = newDirector("constraint")
	assert.NoError(t, err)
	_, err = newDirector("psychic")
	assert.Error(t, err)
}

func TestGameModeValue(t *testing.T) {
	var mode game.GameMode
	value := newGameModeValue(game.Classic, &mode)

	require.NoError(t, value.Set("win7"))
	assert.Equal(t, game.Win7, mode)
	assert.Equal(t, "win7", value.String())
	assert.Error(t, value.Set("win95"))
}
