package game

import "strings"

// Grid is a display-ready view of a board, indexed [y][x]
type Grid [][]CellState

// Snapshot returns what the player can currently see of the board
func (board *Board) Snapshot() Grid {
	grid := make(Grid, board.height)
	for y, row := range board.cells {
		grid[y] = make([]CellState, len(row))
		for x := range row {
			grid[y][x] = row[x].state()
		}
	}
	return grid
}

func (grid Grid) Width() int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid[0])
}

func (grid Grid) Height() int {
	return len(grid)
}

func (grid Grid) At(x, y int) CellState {
	return grid[y][x]
}

func (grid Grid) String() string {
	sb := strings.Builder{}
	for y, row := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, state := range row {
			sb.WriteString(state.String())
		}
	}
	return sb.String()
}
