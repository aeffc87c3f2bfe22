package game

// Board owns every generated cell. Bounded boards are fully populated when
// created; unbounded boards start empty and only ever grow.
type Board struct {
	cells map[cellKey]*Cell

	bounded       bool
	width, height int // in number of cells, bounded boards only

	numMines        int
	numSafe         int
	numRevealedSafe int
	numFlags        int
}

func newUnboundedBoard() *Board {
	return &Board{
		cells: make(map[cellKey]*Cell),
	}
}

func newBoundedBoard(width, height int) *Board {
	return &Board{
		cells:   make(map[cellKey]*Cell, width*height),
		bounded: true,
		width:   width,
		height:  height,
	}
}

func (board *Board) IsBounded() bool {
	return board.bounded
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

// Bounds is the whole board for bounded boards and the zero Rect otherwise.
func (board *Board) Bounds() Rect {
	if !board.bounded {
		return Rect{}
	}
	return Rect{Width: board.width, Height: board.height}
}

func (board *Board) InBounds(pos Position) bool {
	return !board.bounded || board.Bounds().Contains(pos)
}

// NumCells is the number of generated cells.
func (board *Board) NumCells() int {
	return len(board.cells)
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

func (board *Board) Has(pos Position) bool {
	_, ok := board.cells[pos.key()]
	return ok
}

// CellAt returns a copy of the cell at pos, and whether it has been generated.
func (board *Board) CellAt(pos Position) (Cell, bool) {
	if cell := board.cellAt(pos); cell != nil {
		return *cell, true
	}
	return placeholder, false
}

func (board *Board) cellAt(pos Position) *Cell {
	return board.cells[pos.key()]
}

// Positions lists every generated position, in no particular order.
func (board *Board) Positions() []Position {
	positions := make([]Position, 0, len(board.cells))
	for key := range board.cells {
		positions = append(positions, key.position())
	}
	return positions
}

// IsCleared reports whether every generated non-mine cell is revealed.
func (board *Board) IsCleared() bool {
	return board.numRevealedSafe == board.numSafe
}

// place stores a freshly generated cell. Positions that already exist, or
// lie outside a bounded board, are left untouched.
func (board *Board) place(pos Position, value Value) bool {
	if !board.InBounds(pos) || board.Has(pos) {
		return false
	}
	board.cells[pos.key()] = &Cell{value: value}
	if value == MineValue {
		board.numMines++
	} else {
		board.numSafe++
	}
	return true
}

// reveal marks the cell at pos revealed, reporting whether anything changed.
func (board *Board) reveal(pos Position) bool {
	cell := board.cellAt(pos)
	if cell == nil || cell.isRevealed {
		return false
	}
	cell.isRevealed = true
	if !cell.IsMine() {
		board.numRevealedSafe++
	}
	return true
}

// ToggleFlag flips the flag on an unrevealed cell. Absent or revealed cells
// are a no-op.
func (board *Board) ToggleFlag(pos Position) bool {
	cell := board.cellAt(pos)
	if cell == nil || cell.isRevealed {
		return false
	}
	board.setFlagged(cell, !cell.isFlagged)
	return true
}

func (board *Board) setFlagged(cell *Cell, isFlagged bool) {
	if cell.isFlagged == isFlagged {
		return
	}
	cell.isFlagged = isFlagged
	if isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
}
