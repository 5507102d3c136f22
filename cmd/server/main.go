package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/vancomm/sudoku-server/internal/app"
	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/migrations"
)

func main() {
	var logger *slog.Logger
	if config.Development() {
		godotenv.Load()
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.New(logger, migrations.FS).Start(ctx); err != nil {
		logger.Error("failed to start", slog.Any("error", err))
		os.Exit(1)
	}
}
