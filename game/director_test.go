package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDirector plays a fixed list of actions
type scriptedDirector struct {
	actions []CellAction
	board   *Board
	ended   bool
}

func (director *scriptedDirector) Init(board *Board) {
	director.board = board
}

func (director *scriptedDirector) Act() (CellAction, bool) {
	if len(director.actions) == 0 {
		return CellAction{}, false
	}
	action := director.actions[0]
	director.actions = director.actions[1:]
	return action, true
}

func (director *scriptedDirector) End() {
	director.ended = true
}

func TestPlay(t *testing.T) {
	board := boardFromRows(t,
		"###",
		"###",
		"##O",
	)
	director := &scriptedDirector{actions: []CellAction{{X: 5, Y: 5}, {X: 2, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}}}

	outcome, err := Play(testConfig(0, 0, 0), board, director)
	require.NoError(t, err)

	assert.Equal(t, Won, outcome)
	assert.Same(t, board, director.board)
	assert.True(t, director.ended)
	// Play stops as soon as the game is over
	assert.Len(t, director.actions, 1)
}

func TestPlayStopsWhenDirectorGivesUp(t *testing.T) {
	board := boardFromRows(t,
		"#O#",
		"###",
	)
	director := &scriptedDirector{actions: []CellAction{{X: 0, Y: 0}}}

	outcome, err := Play(testConfig(0, 0, 0), board, director)
	require.NoError(t, err)
	assert.Equal(t, Unset, outcome)
	assert.Equal(t, 1, board.Turns())
}

func TestPlayRejectsEndlessUselessActions(t *testing.T) {
	board := boardFromRows(t, "#O")
	actions := make([]CellAction, 10)
	for i := range actions {
		actions[i] = CellAction{X: -1, Y: 0}
	}

	_, err := Play(testConfig(0, 0, 0), board, &scriptedDirector{actions: actions})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPlaySavesSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replays")
	config := testConfig(0, 0, 0)
	config.SavedSnapshotsDir = dir

	for i := 0; i < 2; i++ {
		board := boardFromRows(t, "#O")
		_, err := Play(config, board, &scriptedDirector{actions: []CellAction{{X: 1, Y: 0}}})
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	b, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	snapshot, err := LoadSnapshot(string(b))
	require.NoError(t, err)
	assert.Equal(t, "#*", snapshot.SerializedBoard)
}
