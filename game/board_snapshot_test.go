package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSnapshotRestoresLostGame(t *testing.T) {
	board := boardFromRows(t,
		"##O#",
		"####",
		"O###",
	)
	_, err := board.Reveal(3, 2)
	require.NoError(t, err)
	_, err = board.Reveal(2, 0)
	require.NoError(t, err)
	require.Equal(t, Lost, board.Outcome())

	saved := board.BoardSnapshot().Serialize()

	snapshot, err := LoadSnapshot(saved)
	require.NoError(t, err)
	assert.Equal(t, "##*#\n#...\nO...", snapshot.SerializedBoard)

	restored, err := snapshot.CreateBoard(testConfig(0, 0, 0), false)
	require.NoError(t, err)
	assert.Equal(t, board.Mines(), restored.Mines())
	assert.Equal(t, board.Snapshot(), restored.Snapshot())
	assert.Equal(t, board.Turns(), restored.Turns())
	assert.Equal(t, Lost, restored.Outcome())
	assert.False(t, restored.EndTime().IsZero())

	_, err = restored.Reveal(0, 0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestBoardSnapshotFresh(t *testing.T) {
	config := testConfig(6, 5, 7)
	config.Mode = Win7
	board, err := NewBoard(config)
	require.NoError(t, err)
	_, err = board.Reveal(2, 2)
	require.NoError(t, err)

	snapshot, err := LoadSnapshot(board.BoardSnapshot().Serialize())
	require.NoError(t, err)
	assert.Equal(t, board.Seed(), snapshot.Seed)
	assert.Equal(t, "win7", snapshot.Mode)

	fresh, err := snapshot.CreateBoard(testConfig(0, 0, 0), true)
	require.NoError(t, err)

	assert.Equal(t, board.Mines(), fresh.Mines())
	assert.Equal(t, Win7, fresh.Mode())
	assert.Equal(t, 0, fresh.Turns())
	assert.Equal(t, Unset, fresh.Outcome())
	assert.True(t, fresh.MinesPlaced())
	for _, row := range fresh.Snapshot() {
		for _, state := range row {
			assert.Equal(t, Unrevealed, state)
		}
	}

	// Same mines, same first click: same cascade
	_, err = fresh.Reveal(2, 2)
	require.NoError(t, err)
	assert.Equal(t, board.Snapshot(), fresh.Snapshot())
	assert.Equal(t, board.Turns(), fresh.Turns())
}

func TestBoardSnapshotRestoresWonGame(t *testing.T) {
	snapshot := BoardSnapshot{SerializedBoard: "..\n.O\n"}
	board, err := snapshot.CreateBoard(testConfig(0, 0, 0), false)
	require.NoError(t, err)

	assert.Equal(t, 2, board.Height())
	assert.Equal(t, Won, board.Outcome())
	assert.Equal(t, "11\n1#", board.Snapshot().String())
}

func TestInvalidBoardSnapshots(t *testing.T) {
	tests := []struct {
		name  string
		board string
		mode  string
	}{
		{"empty", "", ""},
		{"ragged rows", "###\n##", ""},
		{"unknown cell", "#x#", ""},
		{"only mines", "OO\nOO", ""},
		{"unknown mode", "#O", "win95"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := BoardSnapshot{SerializedBoard: tt.board, Mode: tt.mode}
			board, err := snapshot.CreateBoard(testConfig(0, 0, 0), false)
			assert.Nil(t, board)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestLoadSnapshotRejectsGarbage(t *testing.T) {
	_, err := LoadSnapshot("seed: [not, a, number]")
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
