package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connections/internal/content"
	"github.com/vovakirdan/tui-connections/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and boards",
	Long:  `Shows the registered game modes and every board in the puzzle pack.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	path, err := packPath()
	if err != nil {
		return err
	}
	pack, err := content.Load(path)
	if err != nil {
		return err
	}

	fmt.Println("Modes:")
	fmt.Println()
	modes := registry.List()
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Description)
	}

	fmt.Println()
	fmt.Println("Boards:")
	fmt.Println()

	if len(pack) == 0 {
		fmt.Println("  No boards available.")
		return nil
	}

	maxIDLen = 2
	for _, p := range pack {
		maxIDLen = max(maxIDLen, len(p.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range pack {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'connections play <id>' to play a board.")
	return nil
}

// packPath resolves the puzzle pack location without opening the database.
func packPath() (string, error) {
	if flagPuzzles != "" {
		return flagPuzzles, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Game.Puzzles, nil
}
