package constraint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
)

// Number of rounds of deduction attempted before guessing
const maxRounds = 4

// Director plays using only what the board's Snapshot shows. Every revealed
// number yields an Observation: so many mines among these concealed cells.
// Observations are combined to find cells which are certainly safe; failing
// that, the cell least likely to be a mine is revealed.
type Director struct {
	Logger logrus.FieldLogger

	board *game.Board

	// Cells deduced to be mines. Mines never move, so this only grows.
	mines   collections.Set[game.Point]
	pending []game.Point
}

type Observation struct {
	origin   *game.Point
	numMines int
	cells    collections.Set[game.Point]
}

func (observation Observation) String() string {
	points := make([]game.Point, 0, len(observation.cells))
	for cell := range observation.cells {
		points = append(points, cell)
	}
	sortPoints(points)

	var cellsRepr strings.Builder
	for i, cell := range points {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(observation.cells.Len())
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.mines = collections.NewSet[game.Point]()
	director.pending = nil

	if director.Logger == nil {
		director.Logger = logrus.StandardLogger()
	}
}

// KnownMines returns the cells deduced to be mines so far
func (director *Director) KnownMines() collections.Set[game.Point] {
	return director.mines
}

func (director *Director) Act() (game.CellAction, bool) {
	if action, ok := director.popPending(); ok {
		return action, true
	}

	observations := director.observe(director.board.Snapshot())

	safe, observations := director.deduce(observations)
	if len(safe) > 0 {
		for cell := range safe {
			director.pending = append(director.pending, cell)
		}
		sortPoints(director.pending)

		director.Logger.WithFields(logrus.Fields{
			"cells":       len(director.pending),
			"known_mines": director.mines.Len(),
		}).Debug("found safe cells")
		return director.popPending()
	}

	if action, ok := director.actLowestProbability(observations); ok {
		return action, true
	}

	director.Logger.Debug("nothing to deduce; guessing")
	return random.Pick(director.board, func(x, y int) bool {
		return director.mines.Contains(game.Point{X: x, Y: y})
	})
}

func (director *Director) popPending() (game.CellAction, bool) {
	for len(director.pending) > 0 {
		cell := director.pending[0]
		director.pending = director.pending[1:]

		if !director.board.IsRevealed(cell.X, cell.Y) {
			return game.CellAction{X: cell.X, Y: cell.Y}, true
		}
	}
	return game.CellAction{}, false
}

// observe turns every revealed number bordering concealed cells into an
// Observation
func (director *Director) observe(grid game.Grid) []*Observation {
	observations := make([]*Observation, 0)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			state := grid.At(x, y)
			if state <= game.Empty || state > game.Number8 {
				continue
			}

			origin := game.Point{X: x, Y: y}
			observation := Observation{
				origin:   &origin,
				numMines: int(state),
				cells:    make(collections.Set[game.Point]),
			}
			for _, neighbor := range neighbors(origin, grid.Width(), grid.Height()) {
				if grid.At(neighbor.X, neighbor.Y) == game.Unrevealed {
					observation.cells.Add(neighbor)
				}
			}

			if len(observation.cells) > 0 {
				observations = append(observations, &observation)
			}
		}
	}

	return observations
}

// deduce applies the trivial rules (all mines / no mines) and splits
// observations whose cells are a subset of another's, returning the cells
// known to be safe
func (director *Director) deduce(observations []*Observation) (collections.Set[game.Point], []*Observation) {
	safe := make(collections.Set[game.Point])

	for round := 0; round < maxRounds; round++ {
		changed := false

		for _, observation := range observations {
			director.removeKnownMines(observation)

			if len(observation.cells) == 0 {
				continue
			}

			if observation.numMines == len(observation.cells) {
				for cell := range observation.cells {
					director.mines.Add(cell)
				}
				observation.cells = make(collections.Set[game.Point])
				observation.numMines = 0
				changed = true
			} else if observation.numMines == 0 {
				for cell := range observation.cells {
					safe.Add(cell)
				}
				observation.cells = make(collections.Set[game.Point])
				changed = true
			}
		}

		if len(safe) > 0 {
			break
		}

		var derived []*Observation
		for _, observation := range observations {
			if len(observation.cells) == 0 {
				continue
			}

			for _, intersectingObs := range observations {
				if intersectingObs == observation || len(intersectingObs.cells) <= len(observation.cells) {
					continue
				}
				if !observation.cells.IsSubset(intersectingObs.cells) {
					continue
				}

				splitObs := &Observation{
					numMines: intersectingObs.numMines - observation.numMines,
					cells:    intersectingObs.cells.Difference(observation.cells),
				}
				if !hasObservation(observations, splitObs) && !hasObservation(derived, splitObs) {
					derived = append(derived, splitObs)
				}
			}
		}

		if len(derived) > 0 {
			observations = append(observations, derived...)
			changed = true
		}

		if !changed {
			break
		}
	}

	return safe, observations
}

func (director *Director) removeKnownMines(observation *Observation) {
	for cell := range observation.cells {
		if director.mines.Contains(cell) {
			observation.cells.Remove(cell)
			observation.numMines--
		}
	}
}

func (director *Director) actLowestProbability(observations []*Observation) (game.CellAction, bool) {
	lowestProbability := math.Inf(1)

	cellProbabilities := make(map[game.Point]float64)
	for _, observation := range observations {
		director.removeKnownMines(observation)
		if len(observation.cells) == 0 {
			continue
		}

		probability := observation.MineProbability()
		for cell := range observation.cells {
			if pastProbability, hasPastProbability := cellProbabilities[cell]; !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
		}
		if probability < lowestProbability {
			lowestProbability = probability
		}
	}

	if len(cellProbabilities) == 0 {
		return game.CellAction{}, false
	}

	lowestProbabilityCells := make([]game.Point, 0)
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	sortPoints(lowestProbabilityCells)

	cell := lowestProbabilityCells[director.board.Rand().Intn(len(lowestProbabilityCells))]
	director.Logger.WithFields(logrus.Fields{
		"cell":        cell,
		"probability": lowestProbability,
	}).Debug("guessing lowest mine probability")

	return game.CellAction{X: cell.X, Y: cell.Y}, true
}

func (director *Director) End() {
	director.board = nil
	director.pending = nil
}

func hasObservation(observations []*Observation, observation *Observation) bool {
	for _, other := range observations {
		if other.numMines == observation.numMines && other.cells.Equal(observation.cells) {
			return true
		}
	}
	return false
}

func neighbors(p game.Point, width, height int) []game.Point {
	points := make([]game.Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := p.X+dx, p.Y+dy
			if (dx != 0 || dy != 0) && x >= 0 && y >= 0 && x < width && y < height {
				points = append(points, game.Point{X: x, Y: y})
			}
		}
	}
	return points
}

func sortPoints(points []game.Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
}
