package game

import "fmt"

// Value is a cell's adjacency count (0-8), or MineValue.
type Value int8

const MineValue Value = -1

// Cell is the state of one board position. Its value is fixed when the cell
// is generated; only the revealed and flagged flags change during play.
type Cell struct {
	value Value

	isRevealed, isFlagged bool
}

// placeholder stands in for positions that have not been generated yet.
var placeholder = Cell{}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%d, revealed=%v, flagged=%v)", cell.value, cell.isRevealed, cell.isFlagged)
}

func (cell Cell) Value() Value {
	return cell.value
}

func (cell Cell) IsMine() bool {
	return cell.value == MineValue
}

// NumMines is the adjacency count; zero for mines.
func (cell Cell) NumMines() int {
	if cell.IsMine() {
		return 0
	}
	return int(cell.value)
}

func (cell Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell Cell) IsFlagged() bool {
	return cell.isFlagged
}

// DisplayState maps the cell to what a player should see. Once the game is
// lost, hidden mines and wrong flags are shown too.
func (cell Cell) DisplayState(lost bool) CellState {
	switch {
	case cell.isRevealed && cell.IsMine():
		return MineLosing
	case cell.isRevealed:
		return CellState(cell.value)
	case cell.isFlagged:
		if lost && !cell.IsMine() {
			return FlagWrong
		}
		return Flag
	case lost && cell.IsMine():
		return MineUnrevealed
	default:
		return Unrevealed
	}
}
