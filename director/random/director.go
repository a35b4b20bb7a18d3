package random

import (
	"github.com/they4kman/sweeper/game"
)

// Director reveals concealed cells in a shuffled order
type Director struct {
	board *game.Board
	order []game.CellAction
	next  int
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.order = make([]game.CellAction, 0, board.NumCells())
	director.next = 0

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			director.order = append(director.order, game.CellAction{X: x, Y: y})
		}
	}

	board.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.CellAction, bool) {
	for director.next < len(director.order) {
		action := director.order[director.next]
		director.next++

		if !director.board.IsRevealed(action.X, action.Y) {
			return action, true
		}
	}
	return game.CellAction{}, false
}

// Pick returns a random concealed cell not in exclude, without advancing the
// shuffled order
func Pick(board *game.Board, exclude func(x, y int) bool) (game.CellAction, bool) {
	candidates := make([]game.CellAction, 0)
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if !board.IsRevealed(x, y) && (exclude == nil || !exclude(x, y)) {
				candidates = append(candidates, game.CellAction{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return game.CellAction{}, false
	}
	return candidates[board.Rand().Intn(len(candidates))], true
}

func (director *Director) End() {
	director.board = nil
	director.order = nil
}
