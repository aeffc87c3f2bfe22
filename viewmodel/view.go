package viewmodel

import (
	"encoding/json"

	"github.com/they4kman/infinisweep/game"
)

type CellView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	State  string `json:"state"`
	Count  int    `json:"count"`
	IsMine bool   `json:"is_mine"`
}

type GameView struct {
	SessionID      string          `json:"session_id"`
	Mode           string          `json:"mode"`
	State          string          `json:"state"`
	Score          int             `json:"score"`
	ElapsedSeconds int             `json:"elapsed_seconds"`
	FlaggingMode   bool            `json:"flagging_mode"`
	MinesRemaining int             `json:"mines_remaining"`
	Origin         game.Position   `json:"origin"`
	Best           game.BestRecord `json:"best"`
	Cells          [][]CellView    `json:"cells"`
}

var cellStateNames = map[game.CellState]string{
	game.Unrevealed:     "hidden",
	game.Flag:           "flagged",
	game.FlagWrong:      "flag_wrong",
	game.MineUnrevealed: "mine",
	game.MineLosing:     "mine_losing",
}

func stateName(state game.CellState) string {
	if name, ok := cellStateNames[state]; ok {
		return name
	}
	return "opened"
}

func NewCellView(pos game.Position, cell game.Cell, lost bool) CellView {
	state := cell.DisplayState(lost)
	view := CellView{X: pos.X, Y: pos.Y, State: stateName(state)}

	switch state {
	case game.MineLosing, game.MineUnrevealed:
		view.IsMine = true
	case game.Flag, game.FlagWrong, game.Unrevealed:
	default:
		view.Count = cell.NumMines()
	}
	return view
}

func NewGameView(snapshot game.Snapshot) GameView {
	lost := snapshot.State == game.Lost

	cells := make([][]CellView, len(snapshot.Cells))
	for row, cellRow := range snapshot.Cells {
		cells[row] = make([]CellView, len(cellRow))
		for col, cell := range cellRow {
			cells[row][col] = NewCellView(snapshot.Origin.Add(col, row), cell, lost)
		}
	}

	return GameView{
		SessionID:      snapshot.SessionID,
		Mode:           snapshot.Mode.String(),
		State:          snapshot.State.String(),
		Score:          snapshot.Score,
		ElapsedSeconds: int(snapshot.Elapsed.Seconds()),
		FlaggingMode:   snapshot.FlaggingMode,
		MinesRemaining: snapshot.RemainingMines,
		Origin:         snapshot.Origin,
		Best:           snapshot.Best,
		Cells:          cells,
	}
}

// JSON renders the session for a browser front end. Encoding a GameView
// cannot fail, so an empty object is only returned for a nil session.
func JSON(session *game.Session) string {
	if session == nil {
		return "{}"
	}
	out, err := json.Marshal(NewGameView(session.Snapshot()))
	if err != nil {
		return "{}"
	}
	return string(out)
}
