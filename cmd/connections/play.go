package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connections/internal/content"
	"github.com/vovakirdan/tui-connections/internal/games/connections"
	"github.com/vovakirdan/tui-connections/internal/platform/tui"
	"github.com/vovakirdan/tui-connections/internal/registry"
)

var flagDaily bool

var playCmd = &cobra.Command{
	Use:   "play [puzzle-id]",
	Short: "Play a board",
	Long: `Start playing a board. Without an id a random board from the pack is
chosen; with --daily everyone playing the same pack gets the same board today.

Controls:
  Arrows/hjkl  - Move
  Space        - Select or deselect an item
  Enter        - Submit four selected items
  S            - Shuffle the board
  D            - Deselect all
  R            - New game (after the game ends)
  Esc          - Back
  Q/Ctrl+C     - Quit

Examples:
  connections play
  connections play day-2
  connections play --daily
  connections play --puzzles ./pack.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDaily, "daily", false, "Play today's board")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagDaily && len(args) > 0 {
		return fmt.Errorf("a puzzle id cannot be combined with --daily")
	}

	s, err := setup()
	if err != nil {
		return err
	}
	defer s.Close()

	modeID := connections.ClassicID
	if flagDaily {
		modeID = connections.DailyID
	}
	if len(args) > 0 {
		if _, err := content.Find(s.pack, args[0]); err != nil {
			return fmt.Errorf("%w (run 'connections list' to see boards)", err)
		}
		s.configurePuzzle(args[0])
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	if _, err := tui.Run(game, s.runtimeConfig(), s.tuiOptions()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
