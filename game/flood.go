package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell) bool

// flood visits cell, then keeps visiting the neighbors of every visited cell
// with no adjacent mines. Each cell is pushed onto the worklist at most once.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := map[int]struct{}{cell.idx: {}}

	var visitQueue deque.Deque
	visitQueue.PushBack(cell)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		if !visit(cell) {
			continue
		}

		if cell.isMine || cell.numMines != 0 {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			// Don't visit, if already visited
			if _, alreadyVisited := visited[neighbor.idx]; alreadyVisited {
				continue
			}
			visited[neighbor.idx] = struct{}{}

			if !neighbor.isRevealed {
				visitQueue.PushBack(neighbor)
			}
		}
	}
}
