package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wisewallet/backend/config"
	"github.com/wisewallet/backend/internal/database"
	"github.com/wisewallet/backend/internal/logger"
	"github.com/wisewallet/backend/internal/server"
	"github.com/wisewallet/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := database.New(cfg)
	if err != nil {
		appLog.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		appLog.Fatal("failed to migrate database", "error", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		appLog.Warn("redis unavailable, caching and rate limiting disabled", "error", err)
		redisClient = nil
	}

	ctx := context.Background()

	s3Cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		appLog.Warn("s3 unavailable, shopping-list export disabled", "error", err)
	}

	var provider service.TextGenerator
	switch cfg.LLMProvider {
	case "gemini":
		gemini, err := service.NewGeminiClient(ctx, cfg)
		if err != nil {
			appLog.Fatal("failed to create Gemini client", "error", err)
		}
		defer gemini.Close()
		provider = gemini
	default:
		provider = service.NewDeepSeekClient(cfg, appLog)
	}

	srv := server.New(cfg, db, redisClient, s3Cfg, provider, appLog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			appLog.Fatal("server error", "error", err)
		}
	case sig := <-quit:
		appLog.Info("received signal, shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("shutdown error", "error", err)
	}
	appLog.Info("server stopped")
}
