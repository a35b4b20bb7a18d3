package game

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when a board can't be built from the
	// requested dimensions and mine count
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	ErrOutOfBounds        = errors.New("coordinates are outside the board")
	ErrAlreadyRevealed    = errors.New("cell is already revealed")
	ErrGameOver           = errors.New("game is already over")
	ErrMinesAlreadyPlaced = errors.New("mines have already been placed")

	ErrInvalidSnapshot = errors.New("invalid board snapshot")
)

func outOfBounds(board *Board, x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "(%d, %d) on %dx%d board", x, y, board.width, board.height)
}
