package game

import "fmt"

type CellState int
type State int
type Mode int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

const (
	NotStarted State = iota
	InProgress
	Lost
	Won
)

var stateNames = map[State]string{
	NotStarted: "not_started",
	InProgress: "in_progress",
	Lost:       "lost",
	Won:        "won",
}

func (state State) String() string {
	if name, ok := stateNames[state]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(state))
}

// IsTerminal reports whether the session must be restarted before play resumes.
func (state State) IsTerminal() bool {
	return state == Lost || state == Won
}

const (
	Normal Mode = iota
	Infinite
)

var Modes = map[string]Mode{
	"normal":   Normal,
	"infinite": Infinite,
}

func (mode Mode) String() string {
	for name, m := range Modes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

func ParseMode(name string) (Mode, error) {
	if mode, isValid := Modes[name]; isValid {
		return mode, nil
	}
	return Normal, fmt.Errorf("invalid game mode %q", name)
}

const (
	// MoveStep is how far the viewport travels per directional move.
	MoveStep = 2

	minRevealScore = 35
	maxRevealScore = 50
)
