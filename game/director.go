package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CellAction is a reveal chosen by a Director
type CellAction struct {
	X, Y int
}

func (action CellAction) String() string {
	return Point{action.X, action.Y}.String()
}

type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Board)

	/**
	 * Choose the next cell to reveal; false when there's nothing left to try
	 */
	Act() (CellAction, bool)

	/**
	 * Stop acting
	 */
	End()
}

// Play lets director reveal cells on board until the game is over or the
// director runs out of actions. The final board is saved to
// config.SavedSnapshotsDir, if set.
func Play(config GameConfig, board *Board, director Director) (Outcome, error) {
	logger := config.logger()

	director.Init(board)
	defer director.End()

	rejected := 0
	for !board.IsOver() {
		action, ok := director.Act()
		if !ok {
			break
		}

		result, err := board.Apply(action)
		switch {
		case errors.Is(err, ErrAlreadyRevealed), errors.Is(err, ErrOutOfBounds):
			// The director made a useless move; the board is unchanged
			logger.WithError(err).WithField("action", action).Warn("director action rejected")
			if rejected++; rejected > board.NumCells() {
				return board.outcome, errors.Wrap(err, "director keeps choosing unplayable cells")
			}
			continue
		case err != nil:
			return board.outcome, err
		}

		logger.WithFields(logrus.Fields{
			"action": action,
			"result": result,
			"turns":  board.turns,
		}).Trace("director acted")
	}

	if path, err := config.saveSnapshot(board); err != nil {
		logger.WithError(err).Error("failed to save board snapshot")
	} else if path != "" {
		logger.WithField("path", path).Debug("saved board snapshot")
	}

	return board.outcome, nil
}
