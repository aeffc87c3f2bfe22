//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/infinisweep/game"
	"github.com/they4kman/infinisweep/records"
	"github.com/they4kman/infinisweep/viewmodel"
)

var session *game.Session

var directions = map[string]game.Direction{
	"up":    game.Up,
	"down":  game.Down,
	"left":  game.Left,
	"right": game.Right,
}

// newGame starts a session. JS calls goNewGame(mode) or
// goNewGame(mode, size, mines).
func newGame(this js.Value, args []js.Value) interface{} {
	config := game.NewGameConfig()
	if len(args) >= 1 {
		mode, err := game.ParseMode(args[0].String())
		if err != nil {
			logrus.WithError(err).Warn("falling back to normal mode")
		}
		config.Mode = mode
	}
	if len(args) >= 3 {
		config.Size = uint(args[1].Int())
		config.NumMines = uint(args[2].Int())
	}

	storage := localStorage{js.Global().Get("localStorage")}
	config.Records = records.NewKeyValueStore(storage)
	if token, ok := storage.GetItem("token"); ok && token != "" {
		origin := js.Global().Get("location").Get("origin").String()
		config.Reporter = records.NewLeaderboard(origin, token)
	}

	created, err := game.NewSession(config)
	if err != nil {
		logrus.WithError(err).Error("could not start game")
		return nil
	}
	session = created
	return viewmodel.JSON(session)
}

// withPosition wraps a handler taking world coordinates
func withPosition(action func(game.Position)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if session == nil || len(args) < 2 {
			return nil
		}
		action(game.Pos(args[0].Int(), args[1].Int()))
		return viewmodel.JSON(session)
	})
}

func withSession(action func(args []js.Value)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if session == nil {
			return nil
		}
		action(args)
		return viewmodel.JSON(session)
	})
}

func main() {
	c := make(chan struct{})

	global := js.Global()
	global.Set("goNewGame", js.FuncOf(newGame))
	global.Set("goClick", withPosition(func(pos game.Position) { session.Click(pos) }))
	global.Set("goFlag", withPosition(func(pos game.Position) { session.Flag(pos) }))
	global.Set("goMove", withSession(func(args []js.Value) {
		if len(args) < 1 {
			return
		}
		if direction, ok := directions[args[0].String()]; ok {
			session.Move(direction)
		}
	}))
	global.Set("goToggleFlagging", withSession(func([]js.Value) { session.ToggleFlaggingMode() }))
	global.Set("goRestart", withSession(func([]js.Value) { session.Restart() }))
	global.Set("goSnapshot", withSession(func([]js.Value) {}))

	println("infinisweep initialized")
	<-c
}
