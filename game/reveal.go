package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/infinisweep/util/collections"
)

// RevealResult lists the cells a single Reveal opened.
type RevealResult struct {
	Revealed collections.Set[Position]
	HitMine  bool
}

// Reveal opens the cell at pos. A mine is opened alone and reported through
// HitMine; an empty cell floods outwards through connected empty cells and
// opens their numbered border. Absent, revealed and flagged cells are left
// alone, so the flood stops at the edge of generated territory.
func Reveal(board *Board, pos Position) RevealResult {
	result := RevealResult{Revealed: make(collections.Set[Position])}

	target := board.cellAt(pos)
	if target == nil || target.isRevealed || target.isFlagged {
		return result
	}

	if target.IsMine() {
		board.reveal(pos)
		result.Revealed.Add(pos)
		result.HitMine = true
		return result
	}

	flood(board, pos, result.Revealed)
	return result
}

// flood is a depth-first fill over an explicit stack. A cell is pushed at
// most once per revealed neighbour and skipped once revealed, so it ends.
// Mines are never opened by the flood.
func flood(board *Board, start Position, revealed collections.Set[Position]) {
	var frontier deque.Deque
	frontier.PushBack(start)

	for frontier.Len() > 0 {
		pos := frontier.PopBack().(Position)

		cell := board.cellAt(pos)
		if cell == nil || cell.isRevealed || cell.isFlagged || cell.IsMine() {
			continue
		}

		board.reveal(pos)
		revealed.Add(pos)

		if cell.value == 0 {
			for _, neighbor := range pos.Neighbors() {
				if !revealed.Contains(neighbor) {
					frontier.PushBack(neighbor)
				}
			}
		}
	}
}
