package game

type CellState int
type Outcome int
type RevealResult int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Mine,
}

func (state CellState) String() string {
	switch {
	case state == Unrevealed:
		return "#"
	case state == Empty:
		return "."
	case state == Mine:
		return "*"
	case state > Empty && state <= Number8:
		return string(rune('0' + int(state)))
	default:
		return "?"
	}
}

const (
	Unset Outcome = iota
	Won
	Lost
)

func (outcome Outcome) String() string {
	switch outcome {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unset"
	}
}

const (
	NoChange RevealResult = iota
	Continue
	Win
	Lose
)

func (result RevealResult) String() string {
	switch result {
	case Continue:
		return "continue"
	case Win:
		return "won"
	case Lose:
		return "lost"
	default:
		return "no change"
	}
}

type GameMode int

const (
	// Classic keeps only the first-clicked cell free of mines
	Classic GameMode = iota
	// Win7 also clears the cells surrounding the first click, when the board has room
	Win7
)

var GameModes = map[string]GameMode{
	"classic": Classic,
	"win7":    Win7,
}

func (mode GameMode) String() string {
	for name, m := range GameModes {
		if m == mode {
			return name
		}
	}
	return "unknown"
}
