package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"chart_signal/internal/app/di"
	"chart_signal/internal/app/router"
	signalhandler "chart_signal/internal/feature/signal/transport/handler"
	"chart_signal/internal/feature/signal/transport/web"
	"chart_signal/internal/platform/config"
	healthhandler "chart_signal/internal/platform/http/handler"
	"chart_signal/internal/platform/markdown"
	infraredis "chart_signal/internal/platform/redis"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// 認証情報がなければ起動しない
	if err := config.ResolveCredential(&cfg.Gemini, config.NewTerminalPrompter()); err != nil {
		fmt.Fprintln(os.Stderr, config.MissingCredentialMessage)
		slog.Error("startup aborted", "error", err)
		os.Exit(1)
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without sentiment cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	comps, err := di.NewSignalComponents(ctx, cfg, rdb)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := comps.Close(); err != nil {
			slog.Error("Failed to close clients", "error", err)
		}
	}()

	// Handler
	pageH := signalhandler.NewPageHandler(comps.Pipeline, web.Templates(), markdown.NewRenderer(), cfg.Server.MaxUploadBytes)
	signalH := signalhandler.NewSignalHandler(comps.Pipeline, cfg.Server.MaxUploadBytes)

	// ルータ生成
	r := router.NewRouter(pageH, signalH, healthhandler.NewHealth(comps.Health), cfg.Server.MaxUploadBytes)

	slog.Info("listening", "port", cfg.Server.Port, "model", comps.Health.Model)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
