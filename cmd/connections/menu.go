package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connections/internal/platform/tui"
	"github.com/vovakirdan/tui-connections/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a game you
return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected entry
  Tab          - Stats
  Q            - Quit

Examples:
  connections menu
  connections menu --puzzles ./puzzles
  connections menu --db ./results.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := setup()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(s.pack, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		cfg.ScreenW, cfg.ScreenH = result.Width, result.Height

		if result.Quit {
			return nil
		}

		if result.WantsStats {
			goBack, err := tui.RunStats(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				s.logger.Error("Stats screen failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		s.configurePuzzle(result.PuzzleID)
		game, err := registry.Create(result.ModeID)
		if err != nil {
			s.logger.Error("Cannot start game", "mode", result.ModeID, "err", err)
			continue
		}

		// New shuffle for each game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		goBack, err := tui.Run(game, cfg, s.tuiOptions())
		if err != nil {
			s.logger.Error("Game failed", "err", err)
		}
		if !goBack {
			return nil
		}
	}
}
