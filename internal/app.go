package internal

import (
	"io"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
)

// SetupGame loads the configuration, applies command line flags, sets up logging and creates a new game.
// Logs go to stderr unless a log file is configured. With fileLogging set logs always go to a file,
// which defaults to the XDG state directory. Invalid configuration is fatal.
// The returned function closes the log file.
func SetupGame(flags *config.Flags, fileLogging bool) (*othello.Game, *config.GameConfig, func()) {
	// Load configuration
	cfg := config.LoadGameConfig()

	if err := flags.Apply(cfg); err != nil {
		slog.Error("Invalid command line flags", "error", err)
		os.Exit(1)
	}

	// Setup logging
	var logOutput io.Writer = os.Stderr
	closeLog := func() {}

	if fileLogging || cfg.LogFile != "" {
		file, err := config.OpenLogFile(cfg.LogFile)
		if err != nil {
			slog.Error("Failed to open log file", "error", err)
			os.Exit(1)
		}
		logOutput = file
		closeLog = func() { _ = file.Close() }
	}

	if err := config.SetupLogging(cfg.LogLevel, logOutput); err != nil {
		slog.Error("Failed to setup logging", "error", err)
		os.Exit(1)
	}

	// Create computer player
	strategy, err := cfg.NewStrategy()
	if err != nil {
		slog.Error("Failed to create computer player", "error", err)
		os.Exit(1)
	}

	game := othello.NewGame(strategy)
	slog.Info("Starting game", "game_id", game.ID(), "tie_break", cfg.TieBreak, "seeded", cfg.HasSeed)

	return game, cfg, closeLog
}
