package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the saved form of a board: its seed, mode and every
// cell, one row per line.
//
//	#  concealed cell
//	.  revealed cell
//	O  concealed mine
//	*  revealed mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Mode            string `yaml:"mode"`
	Turns           int    `yaml:"turns"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) BoardSnapshot() *BoardSnapshot {
	rows := make([]string, board.height)
	for y, row := range board.cells {
		sb := strings.Builder{}
		for x := range row {
			sb.WriteString(row[x].serialize())
		}
		rows[y] = sb.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		Mode:            board.mode.String(),
		Turns:           board.turns,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the saved board. Width, height, mine count, seed and
// mode come from the snapshot; the rest of config is kept. With fresh, every
// cell starts concealed and the turn count is reset.
func (snapshot *BoardSnapshot) CreateBoard(config GameConfig, fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	config.Height = len(rows)
	config.Width = len(rows[0])
	if config.Width == 0 {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}

	config.NumMines = 0
	for y, row := range rows {
		if len(row) != config.Width {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, expected %d", y, len(row), config.Width)
		}
		config.NumMines += strings.Count(row, "O") + strings.Count(row, "*")
	}

	if snapshot.Mode != "" {
		mode, ok := GameModes[snapshot.Mode]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown mode %q", snapshot.Mode)
		}
		config.Mode = mode
	}
	config.Seed = snapshot.Seed

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}

	board := createBoard(config)
	for y, row := range rows {
		for x, c := range row {
			cell := board.cellAt(x, y)
			if !cell.deserialize(c, fresh) {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unexpected %q at %v", c, Point{x, y})
			}
		}
	}

	board.restore(fresh, snapshot.Turns)
	return board, nil
}

// restore recomputes everything derived from the cells' mine and revealed
// flags after they've been loaded
func (board *Board) restore(fresh bool, turns int) {
	board.remaining = 0
	revealedMine := false

	for y := range board.cells {
		for x := range board.cells[y] {
			cell := &board.cells[y][x]
			if cell.isMine {
				board.mines.Add(cell.Point())
				for _, neighbor := range cell.neighbors() {
					neighbor.numMines++
				}
				revealedMine = revealedMine || cell.isRevealed
			} else if !cell.isRevealed {
				board.remaining++
			}
		}
	}
	board.minesPlaced = true

	if !fresh {
		board.turns = turns
	}

	switch {
	case revealedMine:
		board.outcome = Lost
		board.endTime = board.startTime
	case board.remaining == 0:
		board.outcome = Won
		board.endTime = board.startTime
	}
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	return &snapshot, nil
}
