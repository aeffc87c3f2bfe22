package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/infinisweep/util/collections"
)

// Layout symbols, one per cell:
//
//	*  mine
//	F  flagged mine
//	#  hidden cell
//	f  flagged cell
//	.  revealed cell
const (
	layoutMine        = '*'
	layoutFlaggedMine = 'F'
	layoutHidden      = '#'
	layoutFlagged     = 'f'
	layoutRevealed    = '.'
)

// ParseLayout builds a bounded board from rows of layout symbols.
// Adjacency counts are computed from the mines in the layout. With fresh
// set, flags and revealed marks are discarded.
func ParseLayout(layout string, fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, errors.New("layout is empty")
	}

	board := newBoundedBoard(width, height)
	mines := make(collections.Set[Position])
	var revealed, flagged []Position

	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("layout row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, symbol := range row {
			pos := Pos(x, y)
			switch symbol {
			case layoutMine:
				mines.Add(pos)
			case layoutFlaggedMine:
				mines.Add(pos)
				flagged = append(flagged, pos)
			case layoutFlagged:
				flagged = append(flagged, pos)
			case layoutRevealed:
				revealed = append(revealed, pos)
			case layoutHidden:
			default:
				return nil, errors.Errorf("invalid layout symbol %q at %v", symbol, pos)
			}
		}
	}

	board.settle(board.Bounds().Positions(), mines)

	if !fresh {
		for _, pos := range revealed {
			board.reveal(pos)
		}
		for _, pos := range flagged {
			board.setFlagged(board.cellAt(pos), true)
		}
	}

	return board, nil
}
