package content

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-connections/internal/puzzle"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % n. Everyone with the same pack and salt gets the
// same board on the same day.
func DailyIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// ForDate picks the daily board from puzzles.
func ForDate(puzzles []puzzle.Puzzle, t time.Time, salt string) (puzzle.Puzzle, error) {
	if len(puzzles) == 0 {
		return puzzle.Puzzle{}, fmt.Errorf("content: no puzzles for %s", DateKey(t))
	}
	return puzzles[DailyIndex(t, salt, len(puzzles))], nil
}
