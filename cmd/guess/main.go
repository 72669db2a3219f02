package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"guess_game/internal/config"
	"guess_game/internal/domain/service/game"
	"guess_game/pkg/contextx"
	"guess_game/pkg/logx"
)

// Консольная игра: stdin -> stdout, логи в stderr. Аргументов нет.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConsole()
	if err != nil {
		slog.Error("config.LoadConsole", logx.Error(err))
		os.Exit(1)
	}

	log := logx.NewLogger(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	ctx = contextx.WithLogger(ctx, log)

	g, err := game.NewLoop(game.UniformSource{}, os.Stdout).Run(ctx, os.Stdin)
	if err != nil {
		log.Error("game aborted", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Debug("game won", slog.Int(logx.FieldAttempts, g.Attempts))
}
