package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/they4kman/infinisweep/game"
)

const help = `commands: c X Y (click), f X Y (flag), t (toggle flagging), w/a/s/d (move), r (restart), q (quit)`

var moves = map[string]game.Direction{
	"w": game.Up,
	"s": game.Down,
	"a": game.Left,
	"d": game.Right,
}

// play runs the interactive loop until q or the end of input
func play(session *game.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, help)
	render(out, session.Snapshot())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := runCommand(session, fields)
		if err != nil {
			fmt.Fprintln(out, err)
			fmt.Fprintln(out, help)
			continue
		}
		if quit {
			return nil
		}
		render(out, session.Snapshot())
	}
	return scanner.Err()
}

func runCommand(session *game.Session, fields []string) (quit bool, err error) {
	switch command := fields[0]; command {
	case "q":
		return true, nil
	case "t":
		session.ToggleFlaggingMode()
	case "r":
		session.Restart()
	case "c", "f":
		pos, err := parsePosition(session, fields[1:])
		if err != nil {
			return false, err
		}
		if command == "c" {
			session.Click(pos)
		} else {
			session.Flag(pos)
		}
	default:
		direction, ok := moves[command]
		if !ok {
			return false, fmt.Errorf("unknown command %q", command)
		}
		session.Move(direction)
	}
	return false, nil
}

// parsePosition reads viewport column and row, returning the world position
func parsePosition(session *game.Session, args []string) (game.Position, error) {
	if len(args) != 2 {
		return game.Position{}, fmt.Errorf("expected a column and a row")
	}
	col, err := strconv.Atoi(args[0])
	if err != nil {
		return game.Position{}, fmt.Errorf("invalid column %q", args[0])
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return game.Position{}, fmt.Errorf("invalid row %q", args[1])
	}
	return session.Viewport().World(col, row), nil
}

// autoplay lets director act on every tick until it has nothing left to do
func autoplay(session *game.Session, director game.Director, interval time.Duration, out io.Writer) error {
	render(out, session.Snapshot())

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for range tick.C {
		acted := director.Act()
		render(out, session.Snapshot())
		if !acted {
			return nil
		}
	}
	return nil
}
