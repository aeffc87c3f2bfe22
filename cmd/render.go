package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/they4kman/infinisweep/game"
)

var glyphs = map[game.CellState]byte{
	game.Unrevealed:     '#',
	game.Empty:          '.',
	game.Flag:           'F',
	game.FlagWrong:      'x',
	game.Mine:           '*',
	game.MineUnrevealed: '*',
	game.MineLosing:     '@',
}

func glyph(state game.CellState) byte {
	if state >= game.Number1 && state <= game.Number8 {
		return byte('0' + int(state))
	}
	return glyphs[state]
}

func statusLine(snapshot game.Snapshot) string {
	var status strings.Builder

	fmt.Fprintf(&status, "%s | %s", snapshot.Mode, strings.Replace(snapshot.State.String(), "_", " ", -1))
	if snapshot.Mode == game.Infinite {
		fmt.Fprintf(&status, " | score %d | view %v", snapshot.Score, snapshot.Origin)
	} else {
		fmt.Fprintf(&status, " | mines %03d", snapshot.RemainingMines)
	}
	fmt.Fprintf(&status, " | %ds", int(snapshot.Elapsed/time.Second))
	if snapshot.FlaggingMode {
		status.WriteString(" | flagging")
	}

	switch snapshot.State {
	case game.Won:
		status.WriteString("   WIN!")
	case game.Lost:
		status.WriteString("   LOSE :(")
	}
	return status.String()
}

// render draws the visible cells with column and row indexes
func render(out io.Writer, snapshot game.Snapshot) {
	lost := snapshot.State == game.Lost

	fmt.Fprintln(out, statusLine(snapshot))

	header := make([]byte, snapshot.Width)
	for col := range header {
		header[col] = byte('0' + col%10)
	}
	fmt.Fprintf(out, "   %s\n", header)

	for row, cells := range snapshot.Cells {
		line := make([]byte, len(cells))
		for col, cell := range cells {
			line[col] = glyph(cell.DisplayState(lost))
		}
		fmt.Fprintf(out, "%2d %s\n", row, line)
	}
}
