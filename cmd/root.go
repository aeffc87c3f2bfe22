package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/infinisweep/director/random"
	"github.com/they4kman/infinisweep/game"
	"github.com/they4kman/infinisweep/records"
)

const tokenEnv = "INFINISWEEP_TOKEN"

type options struct {
	game game.GameConfig

	configFile     string
	layoutFile     string
	recordsFile    string
	leaderboardURL string
	token          string
	logLevel       string

	useDirector      bool
	directorInterval time.Duration
}

var opts = options{game: game.NewGameConfig()}

var rootCmd = &cobra.Command{
	Use:   "infinisweep",
	Short: "Play Minesweeper on a fixed board or an endless one",
	Long: `infinisweep is a Minesweeper game with two modes: a fixed square
board, and an infinite board that is generated as you scroll.

Play the normal 20x20 board
	infinisweep

Explore the infinite board
	infinisweep --mode infinite

Let the computer click for you
	infinisweep --director
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if opts.configFile != "" {
			if err := applyConfigFile(cmd, opts.configFile); err != nil {
				return err
			}
		}
		return setupLogging(opts.logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(opts)
		if err != nil {
			return err
		}
		defer session.WaitReports()

		if opts.useDirector {
			director := random.New(time.Now().UnixNano())
			director.Init(session)
			return autoplay(session, director, opts.directorInterval, cmd.OutOrStdout())
		}
		return play(session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(parsed)
	return nil
}

func newSession(opts options) (*game.Session, error) {
	config := opts.game

	if opts.layoutFile != "" {
		layout, err := ioutil.ReadFile(opts.layoutFile)
		if err != nil {
			return nil, errors.Wrap(err, "reading layout")
		}
		config.Layout = string(layout)
	}

	recordsFile := opts.recordsFile
	if recordsFile == "" {
		recordsFile = records.DefaultPath()
	}
	config.Records = records.NewFileStore(recordsFile)

	token := opts.token
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	if opts.leaderboardURL != "" && token != "" {
		config.Reporter = records.NewLeaderboard(opts.leaderboardURL, token)
	}

	return game.NewSession(config)
}

type gameModeValue game.Mode

func newGameModeValue(val game.Mode, p *game.Mode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.Mode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.Mode"
}

func init() {
	flags := rootCmd.Flags()
	persistent := rootCmd.PersistentFlags()

	flags.Var(newGameModeValue(game.Normal, &opts.game.Mode), "mode", `Game mode.
normal: a fixed square board with a set number of mines
infinite: an endless board, scrolled with w/a/s/d; score points for every numbered cell revealed`)
	flags.UintVarP(&opts.game.Size, "size", "s", opts.game.Size, "Width and height of the normal board, in cells")
	flags.UintVarP(&opts.game.NumMines, "mines", "m", opts.game.NumMines, "Number of mines on the normal board")
	flags.UintVar(&opts.game.ViewportWidth, "viewport-width", opts.game.ViewportWidth, "Visible columns in infinite mode")
	flags.UintVar(&opts.game.ViewportHeight, "viewport-height", opts.game.ViewportHeight, "Visible rows in infinite mode")
	flags.Float64VarP(&opts.game.MineProbability, "probability", "p", opts.game.MineProbability, "Chance of each infinite mode cell being a mine")
	flags.Int64Var(&opts.game.Seed, "seed", 0, "Random seed; 0 picks one from the clock")
	flags.StringVar(&opts.layoutFile, "layout", "", "File holding a normal mode board layout (*, F, #, f, .)")
	flags.BoolVarP(&opts.useDirector, "director", "d", false, "Make the computer play")
	flags.DurationVar(&opts.directorInterval, "director-interval", 500*time.Millisecond, "Delay between computer moves")

	persistent.StringVar(&opts.configFile, "config", "", "YAML file with default values for any flag")
	persistent.StringVar(&opts.recordsFile, "records", "", "File to keep best scores and times in (default: user config dir)")
	persistent.StringVar(&opts.leaderboardURL, "leaderboard-url", "", "Leaderboard service to submit results to")
	persistent.StringVar(&opts.token, "token", "", "Leaderboard token (default: $"+tokenEnv+")")
	persistent.StringVar(&opts.logLevel, "log-level", "warning", "Log level: debug, info, warning, error")
}
