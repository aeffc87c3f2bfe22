package game

import "fmt"

// Position is a cell coordinate. Unbounded boards accept any value that fits
// in an int32; bounded boards use [0, width) x [0, height).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

func (pos Position) Add(dx, dy int) Position {
	return Position{X: pos.X + dx, Y: pos.Y + dy}
}

// cellKey packs both coordinates into one map key so negative coordinates
// need no special handling.
type cellKey uint64

func (pos Position) key() cellKey {
	return cellKey(uint64(uint32(int32(pos.X)))<<32 | uint64(uint32(int32(pos.Y))))
}

func (key cellKey) position() Position {
	return Position{X: int(int32(uint32(key >> 32))), Y: int(int32(uint32(key)))}
}

var neighborOffsets = [8]Position{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// Neighbors returns the Moore neighborhood of pos, regardless of board bounds.
func (pos Position) Neighbors() [8]Position {
	var neighbors [8]Position
	for i, offset := range neighborOffsets {
		neighbors[i] = pos.Add(offset.X, offset.Y)
	}
	return neighbors
}

// Rect is a rectangle of positions with its top-left corner at Origin.
type Rect struct {
	Origin        Position
	Width, Height int
}

func (rect Rect) Contains(pos Position) bool {
	return pos.X >= rect.Origin.X && pos.X < rect.Origin.X+rect.Width &&
		pos.Y >= rect.Origin.Y && pos.Y < rect.Origin.Y+rect.Height
}

// Positions lists the rectangle row by row.
func (rect Rect) Positions() []Position {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	positions := make([]Position, 0, rect.Width*rect.Height)
	for y := rect.Origin.Y; y < rect.Origin.Y+rect.Height; y++ {
		for x := rect.Origin.X; x < rect.Origin.X+rect.Width; x++ {
			positions = append(positions, Position{X: x, Y: y})
		}
	}
	return positions
}
