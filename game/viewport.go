package game

import "math/rand"

// Viewport is the window of world positions shown in infinite mode.
type Viewport struct {
	origin        Position
	width, height int
}

func NewViewport(origin Position, width, height int) *Viewport {
	return &Viewport{origin: origin, width: width, height: height}
}

func (viewport *Viewport) Origin() Position {
	return viewport.origin
}

func (viewport *Viewport) Width() int {
	return viewport.width
}

func (viewport *Viewport) Height() int {
	return viewport.height
}

func (viewport *Viewport) Rect() Rect {
	return Rect{Origin: viewport.origin, Width: viewport.width, Height: viewport.height}
}

// World maps a viewport column and row to a world position.
func (viewport *Viewport) World(col, row int) Position {
	return viewport.origin.Add(col, row)
}

// Local maps a world position to a viewport column and row, and reports
// whether the position is visible.
func (viewport *Viewport) Local(pos Position) (col, row int, visible bool) {
	col, row = pos.X-viewport.origin.X, pos.Y-viewport.origin.Y
	return col, row, viewport.Rect().Contains(pos)
}

// Move translates the viewport by (dx, dy) and generates everything it now
// covers. The whole window is requested, not only the newly exposed strip;
// generation skips cells that already exist.
func (viewport *Viewport) Move(board *Board, dx, dy int, mineProbability float64, rng *rand.Rand) int {
	viewport.origin = viewport.origin.Add(dx, dy)
	return viewport.Fill(board, mineProbability, rng)
}

// Fill generates the whole window.
func (viewport *Viewport) Fill(board *Board, mineProbability float64, rng *rand.Rand) int {
	return GenerateRegion(board, viewport.Rect(), mineProbability, rng)
}

// CellAt returns the stored cell, or a hidden empty placeholder for
// positions not generated yet. The placeholder is never stored.
func (viewport *Viewport) CellAt(board *Board, pos Position) Cell {
	cell, _ := board.CellAt(pos)
	return cell
}

// Cells returns the visible cells row by row.
func (viewport *Viewport) Cells(board *Board) [][]Cell {
	rows := make([][]Cell, viewport.height)
	for row := range rows {
		rows[row] = make([]Cell, viewport.width)
		for col := range rows[row] {
			rows[row][col] = viewport.CellAt(board, viewport.World(col, row))
		}
	}
	return rows
}
