package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connections/internal/config"
	"github.com/vovakirdan/tui-connections/internal/content"
	"github.com/vovakirdan/tui-connections/internal/core"
	"github.com/vovakirdan/tui-connections/internal/games/connections"
	"github.com/vovakirdan/tui-connections/internal/platform/tui"
	"github.com/vovakirdan/tui-connections/internal/puzzle"
	"github.com/vovakirdan/tui-connections/internal/storage"
)

// session holds everything a command needs to start playing.
type session struct {
	config  config.ConnectionsConfig
	pack    []puzzle.Puzzle
	store   *storage.Store // nil when the database is unavailable
	logger  *log.Logger    // Terminal warnings, before and after the UI runs
	playLog *log.Logger    // Warnings while the UI owns the terminal
	logFile *os.File
}

// newLogger creates the CLI logger.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "connections",
	})
}

// setup loads config and puzzles, opens the results database and
// configures the game modes. A missing database only disables history.
func setup() (*session, error) {
	s := &session{logger: newLogger(os.Stderr)}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	s.config = cfg

	path := flagPuzzles
	if path == "" {
		path = cfg.Game.Puzzles
	}
	s.pack, err = content.Load(path)
	if err != nil {
		return nil, err
	}

	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("Results will not be saved", "db", flagDBPath, "err", err)
		s.store = nil
	}

	s.playLog = log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			s.logger.Warn("Cannot open log file", "path", flagLogFile, "err", err)
		} else {
			s.logFile = f
			s.playLog = log.NewWithOptions(f, log.Options{
				Prefix:          "connections",
				ReportTimestamp: true,
				Level:           log.DebugLevel,
			})
		}
	}

	connections.Configure(connections.Settings{
		Pack:      s.pack,
		Mistakes:  cfg.Game.Mistakes,
		DailySalt: cfg.Game.DailySalt,
	})

	return s, nil
}

// loadConfig loads the config named by --config, or the default search order.
// Only an explicit file or a bad CONNECTIONS_* value can fail.
func loadConfig() (config.ConnectionsConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configurePuzzle pins the board the classic mode plays. Empty picks at random.
func (s *session) configurePuzzle(id string) {
	connections.Configure(connections.Settings{
		Pack:      s.pack,
		PuzzleID:  id,
		Mistakes:  s.config.Game.Mistakes,
		DailySalt: s.config.Game.DailySalt,
	})
}

// runtimeConfig sizes the board to the terminal.
func (s *session) runtimeConfig() core.RuntimeConfig {
	return terminalConfig()
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// tuiOptions returns the collaborators for the game model.
func (s *session) tuiOptions() tui.Options {
	return tui.Options{
		Store:   s.store,
		Palette: tui.NewPalette(s.config.Theme),
		Logger:  s.playLog,
	}
}

// Close releases the database and log file.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("Closing results database", "err", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
