package game

import (
	"time"

	"github.com/pkg/errors"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionOffsets = map[Direction]Position{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

type GameConfig struct {
	Mode Mode

	// Normal mode board
	Size     uint
	NumMines uint

	// Infinite mode window and mine density
	ViewportWidth, ViewportHeight uint
	MineProbability               float64

	// Zero picks a time-based seed
	Seed int64

	// Layout to load the normal mode board from, instead of placing mines
	// at random. See ParseLayout.
	Layout string

	Records  RecordStore
	Reporter Reporter
	// Upper bound on a single leaderboard submission
	ReportTimeout time.Duration

	Clock func() time.Time
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Mode:            Normal,
		Size:            20,
		NumMines:        50,
		ViewportWidth:   15,
		ViewportHeight:  15,
		MineProbability: 0.2,
		ReportTimeout:   10 * time.Second,
		Clock:           time.Now,
	}
}

func (config GameConfig) validate() error {
	switch config.Mode {
	case Normal:
		if config.Layout != "" {
			_, err := ParseLayout(config.Layout, true)
			return errors.Wrap(err, "invalid layout")
		}
		if config.Size == 0 {
			return errors.New("board size must be positive")
		}
		if config.NumMines > config.Size*config.Size {
			return errors.Errorf("cannot place %d mines on a %dx%d board", config.NumMines, config.Size, config.Size)
		}
	case Infinite:
		if config.ViewportWidth == 0 || config.ViewportHeight == 0 {
			return errors.New("viewport size must be positive")
		}
		if config.MineProbability < 0 || config.MineProbability > 1 {
			return errors.Errorf("mine probability %v is outside [0, 1]", config.MineProbability)
		}
	default:
		return errors.Errorf("unknown game mode %v", config.Mode)
	}
	return nil
}
