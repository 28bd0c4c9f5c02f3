// connections is a terminal version of the "create four groups of four" word puzzle.
//
// Usage:
//
//	connections play [puzzle-id]   - Play a board (random if no id)
//	connections play --daily       - Play today's board
//	connections menu               - Pick a board interactively
//	connections list               - List modes and boards
//	connections stats              - Show finished-game history
//	connections validate <file>... - Check puzzle pack files
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible shuffles
//	--db <path>       - Set database path (default: ~/.connections/results.db)
//	--config <path>   - Use a custom config YAML
//	--puzzles <path>  - Use a puzzle pack file or directory
//	--log <path>      - Write play logs to a file
//
// Environment:
//
//	CONNECTIONS_MISTAKES, CONNECTIONS_PUZZLES, CONNECTIONS_DAILY_SALT override the config file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-connections/internal/games/connections"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPuzzles string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connections",
	Short: "Connections - find four groups of four in your terminal",
	Long: `Connections is a terminal word puzzle. Sixteen items hide four groups
of four; select four that share a category and submit them. Three wrong
guesses and the answers are revealed.

Available commands:
  play      - Play a board directly
  menu      - Interactive puzzle picker
  list      - Show modes and boards
  stats     - View finished-game history
  validate  - Check puzzle pack files

Examples:
  connections play
  connections play day-1
  connections play --daily
  connections menu --puzzles ./my-pack.yaml
  connections validate puzzles/*.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.connections/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPuzzles, "puzzles", "", "Puzzle pack file or directory")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write play logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
}
