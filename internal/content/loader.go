package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-connections/internal/puzzle"
)

//go:embed defaults/pack.yaml
var defaultPackYAML []byte

// Default returns the built-in pack.
func Default() ([]puzzle.Puzzle, error) {
	puzzles, err := ParseYAML(defaultPackYAML)
	if err != nil {
		return nil, fmt.Errorf("content: built-in pack: %w", err)
	}
	return puzzles, nil
}

// Load finds the puzzle pack to play.
// Search order: customPath -> ~/.connections/puzzles/ -> ./puzzles/ -> built-in pack.
// customPath may be a file or a directory. A fallback directory is skipped
// when missing or empty, but a broken file inside it is an error.
func Load(customPath string) ([]puzzle.Puzzle, error) {
	if customPath != "" {
		return LoadPath(customPath)
	}

	for _, dir := range []string{userPuzzleDir(), "puzzles"} {
		puzzles, err := loadFallbackDir(dir)
		if err != nil {
			return nil, err
		}
		if len(puzzles) > 0 {
			return puzzles, nil
		}
	}

	return Default()
}

// loadFallbackDir loads dir if it exists. A missing dir yields no puzzles.
func loadFallbackDir(dir string) ([]puzzle.Puzzle, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}
	return LoadDir(dir)
}

// LoadPath loads a pack file or every pack under a directory.
func LoadPath(path string) ([]puzzle.Puzzle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadFile loads a single pack file.
func LoadFile(path string) ([]puzzle.Puzzle, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return nil, fmt.Errorf("content: unsupported extension %q for %s", ext, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: reading %s: %w", path, err)
	}

	puzzles, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("content: parsing %s: %w", path, err)
	}
	return puzzles, nil
}

// LoadDir recursively loads every pack file under root.
// Returns puzzles sorted by ID. An invalid file fails the whole load so a
// broken board never silently disappears from rotation.
func LoadDir(root string) ([]puzzle.Puzzle, error) {
	var puzzles []puzzle.Puzzle
	seen := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		loaded, err := LoadFile(path)
		if err != nil {
			return err
		}
		for _, p := range loaded {
			if other, dup := seen[p.ID]; dup {
				return fmt.Errorf("content: puzzle %q defined in both %s and %s", p.ID, other, path)
			}
			seen[p.ID] = path
		}
		puzzles = append(puzzles, loaded...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walking %s: %w", root, err)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

// Find returns the puzzle with the given ID.
func Find(puzzles []puzzle.Puzzle, id string) (puzzle.Puzzle, error) {
	for _, p := range puzzles {
		if p.ID == id {
			return p, nil
		}
	}
	return puzzle.Puzzle{}, fmt.Errorf("content: puzzle not found: %s", id)
}

// IDs returns the puzzle IDs in pack order.
func IDs(puzzles []puzzle.Puzzle) []string {
	ids := make([]string, len(puzzles))
	for i, p := range puzzles {
		ids[i] = p.ID
	}
	return ids
}

// userPuzzleDir returns ~/.connections/puzzles, or empty if home is unavailable.
func userPuzzleDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connections", "puzzles")
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
