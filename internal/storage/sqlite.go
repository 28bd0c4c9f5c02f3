// Package storage provides SQLite-based history of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only results are recorded; a game in progress is never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// ErrAlreadySaved is returned when a session's result was recorded before.
var ErrAlreadySaved = errors.New("storage: result already saved for this session")

// Store manages the SQLite database connection for results.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID        int64
	SessionID string // One play of a board; generated when empty
	PuzzleID  string
	Mode      string // Game mode ID, e.g. "connections_daily"
	Won       bool
	Mistakes  int // Wrong guesses made
	CreatedAt time.Time
}

// Summary aggregates results for one mode, or all modes.
type Summary struct {
	Mode        string
	Played      int
	Won         int
	AvgMistakes float64
	LastPlayed  time.Time
}

// WinRate returns the share of games won, 0 when nothing was played.
func (s Summary) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			puzzle_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			won INTEGER NOT NULL,
			mistakes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_puzzle_id ON results(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record, or ErrAlreadySaved when the
// session already has a result.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.PuzzleID == "" || r.Mode == "" {
		return 0, errors.New("storage: result needs a puzzle id and a mode")
	}
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO results (session_id, puzzle_id, mode, won, mistakes)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SessionID, r.PuzzleID, r.Mode, r.Won, r.Mistakes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count inserted rows: %w", err)
	}
	if n == 0 {
		return 0, ErrAlreadySaved
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the latest results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	return s.RecentResultsForMode("", limit)
}

// RecentResultsForMode retrieves the latest results of one mode, newest first.
// An empty mode covers all modes.
func (s *Store) RecentResultsForMode(mode string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, puzzle_id, mode, won, mistakes, created_at
		 FROM results
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// ResultsForPuzzle retrieves every result for one board, newest first.
func (s *Store) ResultsForPuzzle(puzzleID string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, puzzle_id, mode, won, mistakes, created_at
		 FROM results
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC`,
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// Summary aggregates results for the given mode. An empty mode covers all modes.
func (s *Store) Summary(mode string) (Summary, error) {
	sum := Summary{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(AVG(mistakes), 0), MAX(created_at)
		 FROM results
		 WHERE ? = '' OR mode = ?`,
		mode, mode,
	).Scan(&sum.Played, &sum.Won, &sum.AvgMistakes, &lastPlayed)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarise results: %w", err)
	}
	sum.LastPlayed = parseTime(lastPlayed)

	return sum, nil
}

// ClearResults deletes the whole history.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.PuzzleID, &r.Mode, &r.Won, &r.Mistakes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
