package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/tui"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// The terminal belongs to the UI, so logs always go to a file.
	game, cfg, closeLog := internal.SetupGame(flags, true)

	if err := tui.New(game, cfg.ShowHints).Run(); err != nil {
		slog.Error("Game stopped", "game_id", game.ID(), "error", err)
		closeLog()
		os.Exit(1)
	}

	slog.Info("Game closed", "game_id", game.ID(), "transcript", game.Transcript())
	closeLog()
}
