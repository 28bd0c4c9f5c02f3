package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connections/internal/platform/tui"
	"github.com/vovakirdan/tui-connections/internal/registry"
	"github.com/vovakirdan/tui-connections/internal/storage"
)

var (
	flagStatsPuzzle      string
	flagStatsMode        string
	flagStatsLimit       int
	flagStatsInteractive bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show finished-game history",
	Long: `Display totals and the most recent finished games.

Examples:
  connections stats
  connections stats --mode connections_daily
  connections stats --puzzle day-1
  connections stats --interactive`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsPuzzle, "puzzle", "", "Only show results for this board")
	statsCmd.Flags().StringVar(&flagStatsMode, "mode", "", "Only count this game mode in the totals")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent games to show")
	statsCmd.Flags().BoolVarP(&flagStatsInteractive, "interactive", "i", false, "Browse results in a table")
}

func runStats(_ *cobra.Command, _ []string) error {
	if flagStatsMode != "" && !registry.Exists(flagStatsMode) {
		return fmt.Errorf("unknown mode %q (run 'connections list' to see modes)", flagStatsMode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagStatsInteractive {
		cfg := terminalConfig()
		_, err := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	sum, err := store.Summary(flagStatsMode)
	if err != nil {
		return err
	}

	var results []storage.Result
	if flagStatsPuzzle != "" {
		results, err = store.ResultsForPuzzle(flagStatsPuzzle)
	} else {
		results, err = store.RecentResults(flagStatsLimit)
	}
	if err != nil {
		return err
	}

	title := "All modes"
	if info, ok := registry.Info(flagStatsMode); ok {
		title = info.Title
	}
	fmt.Printf("Stats - %s\n", title)
	fmt.Println()

	if sum.Played == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Println("Play 'connections play' to start your history!")
		return nil
	}

	fmt.Printf("  Played:        %d\n", sum.Played)
	fmt.Printf("  Won:           %d (%.0f%%)\n", sum.Won, sum.WinRate()*100)
	fmt.Printf("  Avg mistakes:  %.1f\n", sum.AvgMistakes)
	fmt.Printf("  Last played:   %s (%s)\n",
		humanize.Time(sum.LastPlayed), sum.LastPlayed.Local().Format("2006-01-02 15:04"))
	fmt.Println()

	if len(results) == 0 {
		fmt.Printf("No games recorded for %q.\n", flagStatsPuzzle)
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-18s  %-6s  %s\n", "Date", "Puzzle", "Mode", "Result", "Mistakes")
	fmt.Printf("  %-16s  %-12s  %-18s  %-6s  %s\n", "----", "------", "----", "------", "--------")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-16s  %-12s  %-18s  %-6s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.PuzzleID, r.Mode, outcome, r.Mistakes)
	}
	return nil
}
