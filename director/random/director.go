package random

import (
	"math/rand"

	"github.com/they4kman/infinisweep/game"
	"github.com/they4kman/infinisweep/util/collections"
)

var directions = []game.Direction{game.Up, game.Down, game.Left, game.Right}

// Director clicks a random hidden cell in view. In infinite mode it wanders
// off in a random direction once the view holds nothing left to click.
type Director struct {
	session *game.Session
	rand    *rand.Rand

	// Cells flagged by the player are never clicked
	avoid collections.Set[game.Position]
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.avoid = make(collections.Set[game.Position])
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(rand.Int63()))
	}
}

func (director *Director) Act() bool {
	if director.session == nil || director.session.State().IsTerminal() {
		return false
	}

	candidates := director.candidates()
	if len(candidates) == 0 {
		if director.session.Mode() != game.Infinite {
			return false
		}
		director.session.Move(directions[director.rand.Intn(len(directions))])
		return true
	}

	director.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if director.session.IsFlaggingMode() {
		director.session.ToggleFlaggingMode()
	}
	director.session.Click(candidates[0])
	return true
}

func (director *Director) candidates() []game.Position {
	board := director.session.Board()
	viewport := director.session.Viewport()

	hidden := make(collections.Set[game.Position])
	for _, pos := range viewport.Rect().Positions() {
		cell, ok := board.CellAt(pos)
		if !ok || cell.IsRevealed() {
			continue
		}
		if cell.IsFlagged() {
			director.avoid.Add(pos)
			continue
		}
		hidden.Add(pos)
	}

	return hidden.Difference(director.avoid).Sorted(func(a, b game.Position) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}
