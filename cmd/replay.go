package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweeper/game"
)

var replayFresh bool

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Show a saved board, or play it again from scratch",
	Long: `replay loads a board snapshot saved with --snapshots-dir and prints it.

With --fresh, every cell is concealed again and the director replays the
board with the same mines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading snapshot")
		}

		snapshot, err := game.LoadSnapshot(string(b))
		if err != nil {
			return err
		}

		board, err := snapshot.CreateBoard(gameConfig, replayFresh)
		if err != nil {
			return err
		}

		if replayFresh {
			if _, err := playBoard(board); err != nil {
				return err
			}
		}

		fmt.Println(board.Snapshot())
		fmt.Printf("Turns: %d\nOutcome: %s\n", board.Turns(), board.Outcome())
		return nil
	},
}

func init() {
	replayCmd.Flags().BoolVar(&replayFresh, "fresh", false, "Conceal every cell and replay the board")
	replayCmd.Flags().StringVarP(&directorName, "director", "d", directorName, "Director replaying the board (random, constraint)")
}
