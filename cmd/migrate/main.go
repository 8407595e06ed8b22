package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/codezenith/hrms-backend-go/assets"
	"github.com/codezenith/hrms-backend-go/internal/config"
	"github.com/codezenith/hrms-backend-go/internal/pkg/database"
	"github.com/codezenith/hrms-backend-go/internal/pkg/logger"
)

func main() {
	action := flag.String("action", "up", "migration action: up, down, drop or version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(logger.New(cfg.App.LogLevel, cfg.App.Env))

	if err := database.Migrate(assets.Migrations, "migrations", cfg.DatabaseURL(), *action); err != nil {
		slog.Error("migration failed", slog.String("action", *action), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("migration finished", slog.String("action", *action))
}
