// Package main содержит точку входа основного сервиса форума.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/forum-backend/internal/app/forum"
	"github.com/magabrotheeeer/forum-backend/internal/config"
)

// @title Forum Backend API
// @version 1.0
// @description Бэкенд форума: посты с квотами, голоса, комментарии, членство и объявления.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting forum-backend", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := forum.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize forum app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("forum app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
