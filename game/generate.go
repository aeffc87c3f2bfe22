package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/infinisweep/util/collections"
)

// NewInfiniteBoard returns an empty unbounded board; cells appear through
// GenerateRegion.
func NewInfiniteBoard() *Board {
	return newUnboundedBoard()
}

// NewFilledBoard returns a width x height board holding exactly numMines
// mines, placed uniformly at random.
func NewFilledBoard(width, height, numMines int, rng *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("board must have a positive size, got %dx%d", width, height)
	}
	if numMines < 0 || numMines > width*height {
		return nil, errors.Errorf("cannot place %d mines on a %dx%d board", numMines, width, height)
	}

	board := newBoundedBoard(width, height)

	// Re-pick on collision until numMines distinct cells are chosen
	mines := make(collections.Set[Position], numMines)
	for len(mines) < numMines {
		mines.Add(Pos(rng.Intn(width), rng.Intn(height)))
	}

	board.settle(board.Bounds().Positions(), mines)

	log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  numMines,
	}).Debug("filled board")

	return board, nil
}

// GenerateRegion creates every position of region that the board does not
// have yet, making each one a mine with probability mineProbability.
// Existing cells are never rolled again. It returns the number of new cells.
//
// Adjacency counts only see cells that exist once the region is settled, and
// are not revisited when neighbouring regions are generated later. A cell on
// the edge of explored territory may therefore under-count its mines.
func GenerateRegion(board *Board, region Rect, mineProbability float64, rng *rand.Rand) int {
	var fresh []Position
	mines := make(collections.Set[Position])

	for _, pos := range region.Positions() {
		if !board.InBounds(pos) || board.Has(pos) {
			continue
		}
		fresh = append(fresh, pos)
		if rng.Float64() < mineProbability {
			mines.Add(pos)
		}
	}

	if len(fresh) == 0 {
		return 0
	}

	board.settle(fresh, mines)

	log.WithFields(logrus.Fields{
		"origin": region.Origin,
		"width":  region.Width,
		"height": region.Height,
		"cells":  len(fresh),
		"mines":  len(mines),
	}).Debug("generated region")

	return len(fresh)
}

// settle assigns final values to fresh positions, given which of them are
// mines. Every mine must be decided before any count is taken.
func (board *Board) settle(fresh []Position, mines collections.Set[Position]) {
	values := make([]Value, len(fresh))
	for i, pos := range fresh {
		if mines.Contains(pos) {
			values[i] = MineValue
			continue
		}

		count := Value(0)
		for _, neighbor := range pos.Neighbors() {
			if mines.Contains(neighbor) {
				count++
			} else if cell := board.cellAt(neighbor); cell != nil && cell.IsMine() {
				count++
			}
		}
		values[i] = count
	}

	for i, pos := range fresh {
		board.place(pos, values[i])
	}
}
