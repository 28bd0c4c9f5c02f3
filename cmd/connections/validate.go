package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connections/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file-or-dir>...",
	Short: "Check puzzle pack files",
	Long: `Load each pack and report every board that breaks the rules: four
groups of four non-empty items, a difficulty from 1 to 4, and no item
appearing twice on a board.

Supported formats: ` + strings.Join(content.FormatExtensions(), ", ") + `

Examples:
  connections validate puzzles/
  connections validate my-pack.yaml other.yml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		pack, err := content.LoadPath(path)
		if err != nil {
			fmt.Printf("FAIL  %s\n      %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s (%d %s)\n", path, len(pack), pluralize(len(pack), "board"))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d %s failed validation", failed, len(args), pluralize(len(args), "pack"))
	}
	return nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
