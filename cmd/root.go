package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweeper/director/constraint"
	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
)

var log = logrus.New()

var (
	gameConfig   = game.NewGameConfig()
	directorName = "constraint"
	numGames     = 1
	configPath   string
	logLevel     = "info"
)

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Play computer-driven Minesweeper games",
	Long: `sweeper runs Minesweeper games played by a director, logging the
statistics of each game.

Play a single game on the default 30x16 board with 99 mines
	sweeper

Play 100 beginner games with the random director, saving every final board
	sweeper -w 9 -h 9 -m 10 -g 100 -d random --snapshots-dir replays
`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if numGames < 1 {
			return errors.Errorf("number of games must be positive, got %d", numGames)
		}
		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		summary := map[game.Outcome]int{}
		for i := 0; i < numGames; i++ {
			board, err := game.NewBoard(gameConfig)
			if err != nil {
				return err
			}

			outcome, err := playBoard(board)
			if err != nil {
				return err
			}
			summary[outcome]++

			if numGames == 1 {
				fmt.Println(board.Snapshot())
			}

			gameConfig.Seed = board.Rand().Int63()
		}

		log.WithFields(logrus.Fields{
			"games":  numGames,
			"won":    summary[game.Won],
			"lost":   summary[game.Lost],
			"undone": summary[game.Unset],
		}).Info("finished")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func playBoard(board *game.Board) (game.Outcome, error) {
	director, err := newDirector(directorName)
	if err != nil {
		return game.Unset, err
	}

	outcome, err := game.Play(gameConfig, board, director)
	if err != nil {
		return outcome, err
	}

	log.WithFields(board.Stats().Fields()).
		WithField("seed", board.Seed()).
		Info("game over")
	return outcome, nil
}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "random":
		return &random.Director{}, nil
	case "constraint":
		return &constraint.Director{Logger: log}, nil
	default:
		return nil, errors.Errorf("unknown director %q (expected random or constraint)", name)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	gameConfig.Logger = log

	if configPath == "" {
		return nil
	}

	fileConfig := gameConfig
	if err := game.LoadConfig(configPath, &fileConfig); err != nil {
		return err
	}
	gameConfig = mergeConfig(cmd, gameConfig, fileConfig)

	log.WithField("config", configPath).Debug("loaded config file")
	return nil
}

// mergeConfig takes every setting from fileConfig unless its flag was given
// on the command line
func mergeConfig(cmd *cobra.Command, flagConfig, fileConfig game.GameConfig) game.GameConfig {
	flags := cmd.Flags()
	merged := fileConfig

	if flags.Changed("width") {
		merged.Width = flagConfig.Width
	}
	if flags.Changed("height") {
		merged.Height = flagConfig.Height
	}
	if flags.Changed("mines") {
		merged.NumMines = flagConfig.NumMines
	}
	if flags.Changed("mode") {
		merged.Mode = flagConfig.Mode
	}
	if flags.Changed("seed") {
		merged.Seed = flagConfig.Seed
	}
	if flags.Changed("snapshots-dir") {
		merged.SavedSnapshotsDir = flagConfig.SavedSnapshotsDir
	}
	return merged
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	if mode, isValid := game.GameModes[value]; isValid {
		*modeVal = gameModeValue(mode)
		return nil
	} else {
		return fmt.Errorf("invalid game mode")
	}
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with game settings; flags take precedence")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Logging level (trace, debug, info, warn, error)")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Var(newGameModeValue(game.Classic, &gameConfig.Mode), "mode", `Game mode, controlling behaviour of first click.
classic: only the first-clicked cell is kept free of mines
win7: all cells surrounding the first-clicked cell are cleared of mines too`)
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement; random when 0")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save the final board of every game to")
	rootCmd.Flags().IntVarP(&numGames, "games", "g", numGames, "Number of games to play")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", directorName, "Director playing the games (random, constraint)")

	rootCmd.AddCommand(replayCmd)
}
