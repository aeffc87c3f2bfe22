package cmd

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/infinisweep/director/random"
	"github.com/they4kman/infinisweep/game"
)

func layoutSession(t *testing.T, layout string) *game.Session {
	t.Helper()
	config := game.NewGameConfig()
	config.Layout = layout
	now := time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC)
	config.Clock = func() time.Time { return now }
	session, err := game.NewSession(config)
	require.NoError(t, err)
	return session
}

func TestRender(t *testing.T) {
	session := layoutSession(t, "*##\n###")
	session.Click(game.Pos(2, 1))
	session.Flag(game.Pos(0, 0))

	var out bytes.Buffer
	render(&out, session.Snapshot())

	assert.Equal(t, "normal | in progress | mines 000 | 0s\n"+
		"   012\n"+
		" 0 F1.\n"+
		" 1 #1.\n", out.String())
}

func TestRenderLost(t *testing.T) {
	session := layoutSession(t, "**\n##")
	session.Flag(game.Pos(0, 1))
	session.Click(game.Pos(1, 0))

	var out bytes.Buffer
	render(&out, session.Snapshot())

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "LOSE :(")
	assert.Equal(t, " 0 *@", lines[2])
	assert.Equal(t, " 1 x#", lines[3])
}

func TestPlay(t *testing.T) {
	session := layoutSession(t, "*#\n##")
	in := strings.NewReader("c 1 0\nbogus\nt\nc 0 0\nt\nc 0 1\nc 1 1\nq\nc 0 0\n")
	var out bytes.Buffer

	require.NoError(t, play(session, in, &out))

	assert.Equal(t, game.Won, session.State())
	mine, _ := session.Board().CellAt(game.Pos(0, 0))
	assert.True(t, mine.IsFlagged())
	assert.False(t, mine.IsRevealed(), "input after q is ignored")
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.Contains(t, out.String(), "WIN!")
}

func TestPlayInfiniteUsesViewportCoordinates(t *testing.T) {
	config := game.NewGameConfig()
	config.Mode = game.Infinite
	config.MineProbability = 0
	config.ViewportWidth, config.ViewportHeight = 4, 4
	session, err := game.NewSession(config)
	require.NoError(t, err)

	require.NoError(t, play(session, strings.NewReader("d\nf 0 0\nc 1\n"), ioutil.Discard))

	assert.Equal(t, game.Pos(game.MoveStep, 0), session.Viewport().Origin())
	cell, _ := session.Board().CellAt(game.Pos(game.MoveStep, 0))
	assert.True(t, cell.IsFlagged())
	assert.Equal(t, game.NotStarted, session.State(), "c with a missing row is rejected")
}

func TestAutoplay(t *testing.T) {
	session := layoutSession(t, "*#\n##")
	director := random.New(1)
	director.Init(session)

	var out bytes.Buffer
	require.NoError(t, autoplay(session, director, time.Millisecond, &out))

	assert.True(t, session.State().IsTerminal())
}

func testCommand() (*cobra.Command, *options) {
	o := &options{game: game.NewGameConfig()}
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().Var(newGameModeValue(game.Normal, &o.game.Mode), "mode", "")
	cmd.Flags().UintVarP(&o.game.Size, "size", "s", o.game.Size, "")
	cmd.Flags().Float64Var(&o.game.MineProbability, "probability", o.game.MineProbability, "")
	cmd.PersistentFlags().StringVar(&o.recordsFile, "records", "", "")
	return cmd, o
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestApplyConfigFile(t *testing.T) {
	cmd, o := testCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--size", "9"}))
	path := writeConfig(t, "mode: infinite\nsize: 30\nprobability: 0.15\nrecords: /tmp/best.yaml\n")

	require.NoError(t, applyConfigFile(cmd, path))

	assert.Equal(t, game.Infinite, o.game.Mode)
	assert.Equal(t, uint(9), o.game.Size, "command line flags win")
	assert.Equal(t, 0.15, o.game.MineProbability)
	assert.Equal(t, "/tmp/best.yaml", o.recordsFile)
}

func TestApplyConfigFileErrors(t *testing.T) {
	cmd, _ := testCommand()

	assert.Error(t, applyConfigFile(cmd, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, applyConfigFile(cmd, writeConfig(t, "colour: blue\n")))
	assert.Error(t, applyConfigFile(cmd, writeConfig(t, "mode: hard\n")))
	assert.Error(t, applyConfigFile(cmd, writeConfig(t, "mode: [\n")))
}

func TestGameModeValue(t *testing.T) {
	var mode game.Mode
	value := newGameModeValue(game.Infinite, &mode)
	assert.Equal(t, "infinite", value.String())

	require.NoError(t, value.Set("normal"))
	assert.Equal(t, game.Normal, mode)
	assert.Error(t, value.Set("win7"))
}

func TestNewSessionReadsLayoutFile(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "board.txt")
	require.NoError(t, ioutil.WriteFile(layout, []byte("#*#\n###\n"), 0644))

	o := options{game: game.NewGameConfig(), layoutFile: layout, recordsFile: filepath.Join(dir, "records.yaml")}
	session, err := newSession(o)
	require.NoError(t, err)

	assert.Equal(t, 3, session.Board().Width())
	assert.Equal(t, 1, session.Board().NumMines())

	o.layoutFile = filepath.Join(dir, "missing.txt")
	_, err = newSession(o)
	assert.Error(t, err)
}
