package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/console"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	game, cfg, closeLog := internal.SetupGame(flags, false)

	if err := console.New(game, os.Stdin, os.Stdout, cfg.ShowHints).Run(); err != nil {
		slog.Error("Game ended early", "game_id", game.ID(), "transcript", game.Transcript(), "error", err)
		closeLog()
		os.Exit(1)
	}

	slog.Info("Game finished", "game_id", game.ID(), "transcript", game.Transcript())
	closeLog()
}
