package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/util/collections"
)

// Board holds the state of a single game. A Board is owned by one caller
// and isn't safe for concurrent use; start a new game by creating a new Board.
type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell
	mode          GameMode
	seed          int64

	mines       collections.Set[Point]
	minesPlaced bool
	// Concealed cells which aren't mines
	remaining int

	turns     int
	startTime time.Time
	endTime   time.Time
	outcome   Outcome

	rand   *rand.Rand
	logger logrus.FieldLogger
}

// NewBoard creates a board with every cell concealed. Mines are placed by
// PlaceMines, or by the first Reveal.
func NewBoard(config GameConfig) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return createBoard(config), nil
}

func createBoard(config GameConfig) *Board {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := Board{
		width:     config.Width,
		height:    config.Height,
		numMines:  config.NumMines,
		cells:     make([][]Cell, config.Height),
		mode:      config.Mode,
		seed:      seed,
		mines:     make(collections.Set[Point], config.NumMines),
		remaining: config.Width * config.Height,
		startTime: time.Now(),
		rand:      rand.New(rand.NewSource(seed)),
	}
	board.logger = config.logger().WithField("board", board.seed)

	cellIdx := 0
	for y := 0; y < config.Height; y++ {
		row := make([]Cell, config.Width)
		board.cells[y] = row

		for x := 0; x < config.Width; x++ {
			cell := &board.cells[y][x]
			cell.board = &board
			cell.idx = cellIdx
			cell.x, cell.y = x, y
			cellIdx++
		}
	}

	return &board
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) Mode() GameMode {
	return board.mode
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Turns() int {
	return board.turns
}

func (board *Board) Outcome() Outcome {
	return board.outcome
}

func (board *Board) StartTime() time.Time {
	return board.startTime
}

// EndTime is the zero time until the game is won or lost
func (board *Board) EndTime() time.Time {
	return board.endTime
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

func (board *Board) IsOver() bool {
	return board.outcome != Unset
}

// Rand is the board's seeded source of randomness
func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

func (board *Board) cellAt(x, y int) *Cell {
	if board.InBounds(x, y) {
		return &board.cells[y][x]
	}
	return nil
}

func (board *Board) IsRevealed(x, y int) bool {
	cell := board.cellAt(x, y)
	return cell != nil && cell.isRevealed
}

// IsMine reports whether (x, y) holds a mine. It's meant for tests and
// post-game display; players only get to see the Snapshot.
func (board *Board) IsMine(x, y int) bool {
	return board.mines.Contains(Point{x, y})
}

// Mines returns the mined coordinates in row-major order
func (board *Board) Mines() []Point {
	points := make([]Point, 0, len(board.mines))
	for y := range board.cells {
		for x := range board.cells[y] {
			if board.cells[y][x].isMine {
				points = append(points, Point{x, y})
			}
		}
	}
	return points
}

// PlaceMines scatters the board's mines uniformly over every cell except
// (x, y). It can only be called once per board.
func (board *Board) PlaceMines(x, y int) error {
	if board.minesPlaced {
		return ErrMinesAlreadyPlaced
	}
	if !board.InBounds(x, y) {
		return outOfBounds(board, x, y)
	}
	if board.numMines >= board.NumCells() {
		return errors.Wrapf(ErrInvalidConfiguration, "no room for %d mines besides %v", board.numMines, Point{x, y})
	}

	safe := board.cellAt(x, y)
	excluded := map[int]struct{}{safe.idx: {}}
	if board.mode == Win7 {
		neighbors := safe.neighbors()
		if board.NumCells()-1-len(neighbors) >= board.numMines {
			for _, neighbor := range neighbors {
				excluded[neighbor.idx] = struct{}{}
			}
		}
	}

	// Store cell indexes, to shuffle and fill mines
	cellIndexes := make([]int, 0, board.NumCells()-len(excluded))
	for idx := 0; idx < board.NumCells(); idx++ {
		if _, isExcluded := excluded[idx]; !isExcluded {
			cellIndexes = append(cellIndexes, idx)
		}
	}

	board.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	for _, cellIdx := range cellIndexes[:board.numMines] {
		board.cellAt(cellIdx%board.width, cellIdx/board.width).setMine()
	}
	board.minesPlaced = true

	board.logger.WithFields(logrus.Fields{
		"safe":  safe.Point(),
		"mines": board.numMines,
		"mode":  board.mode,
	}).Debug("mines placed")

	return nil
}

// Reveal exposes the cell at (x, y), flooding outwards from cells with no
// adjacent mines. Revealing a concealed cell before mines are placed places
// them, keeping (x, y) safe.
//
// Out-of-bounds coordinates, already-revealed cells and finished games are
// reported as errors and leave the board untouched.
func (board *Board) Reveal(x, y int) (RevealResult, error) {
	if board.IsOver() {
		return NoChange, errors.Wrapf(ErrGameOver, "game was %s", board.outcome)
	}
	if !board.InBounds(x, y) {
		return NoChange, outOfBounds(board, x, y)
	}

	cell := board.cellAt(x, y)
	if cell.isRevealed {
		return NoChange, errors.Wrapf(ErrAlreadyRevealed, "%v", cell.Point())
	}

	if !board.minesPlaced {
		if err := board.PlaceMines(x, y); err != nil {
			return NoChange, err
		}
	}

	if cell.isMine {
		cell.reveal()
		board.lose()
		return Lose, nil
	}

	flood(cell, (*Cell).reveal, (*Cell).neighbors)

	if board.remaining == 0 {
		board.win()
		return Win, nil
	}
	return Continue, nil
}

// Apply performs a CellAction, as chosen by a Director
func (board *Board) Apply(action CellAction) (RevealResult, error) {
	return board.Reveal(action.X, action.Y)
}

func (board *Board) win() {
	board.outcome = Won
	board.endGame()
}

func (board *Board) lose() {
	board.outcome = Lost
	board.endGame()
}

func (board *Board) endGame() {
	board.endTime = time.Now()

	board.logger.WithFields(board.Stats().Fields()).Debug("game over")
}
