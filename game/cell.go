package game

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

type Cell struct {
	board *Board

	x, y     int
	idx      int
	numMines int

	isMine, isRevealed bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine && cell.isRevealed:
		return "*"
	case cell.isMine:
		return "O"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'O':
		cell.isMine = true
		cell.isRevealed = c == '*' && !fresh
	case '.':
		cell.isRevealed = !fresh
	case '#':
		cell.isRevealed = false
	default:
		return false
	}
	return true
}

func (cell *Cell) Point() Point {
	return Point{cell.x, cell.y}
}

// state is what the player is allowed to see of the cell
func (cell *Cell) state() CellState {
	switch {
	case !cell.isRevealed:
		return Unrevealed
	case cell.isMine:
		return Mine
	default:
		return CellState(cell.numMines)
	}
}

// appendNeighbors appends every in-bounds cell within Chebyshev distance 1,
// excluding the cell itself
func (cell *Cell) appendNeighbors(out []*Cell) []*Cell {
	board := cell.board

	isAtTopBorder := cell.y < 1
	isAtBottomBorder := cell.y >= board.height-1

	if cell.x >= 1 {
		out = append(out, board.cellAt(cell.x-1, cell.y))

		if !isAtTopBorder {
			out = append(out, board.cellAt(cell.x-1, cell.y-1))
		}
		if !isAtBottomBorder {
			out = append(out, board.cellAt(cell.x-1, cell.y+1))
		}
	}

	if cell.x < board.width-1 {
		out = append(out, board.cellAt(cell.x+1, cell.y))

		if !isAtTopBorder {
			out = append(out, board.cellAt(cell.x+1, cell.y-1))
		}
		if !isAtBottomBorder {
			out = append(out, board.cellAt(cell.x+1, cell.y+1))
		}
	}

	if !isAtTopBorder {
		out = append(out, board.cellAt(cell.x, cell.y-1))
	}
	if !isAtBottomBorder {
		out = append(out, board.cellAt(cell.x, cell.y+1))
	}

	return out
}

func (cell *Cell) neighbors() []*Cell {
	return cell.appendNeighbors(make([]*Cell, 0, 8))
}

func (cell *Cell) setMine() {
	if cell.isMine {
		return
	}
	cell.isMine = true
	cell.board.mines.Add(cell.Point())
	cell.board.remaining--

	for _, neighbor := range cell.neighbors() {
		neighbor.numMines++
	}
}

// reveal exposes the cell, reporting whether it was newly revealed
func (cell *Cell) reveal() bool {
	if cell.isRevealed {
		return false
	}
	cell.isRevealed = true
	cell.board.turns++

	if !cell.isMine {
		cell.board.remaining--
	}
	return true
}
