package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/config"
	"github.com/ayushaahar/backend/internal/database"
	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/pkg/logging"
	"github.com/ayushaahar/backend/internal/server"
	"github.com/ayushaahar/backend/internal/service"
	"github.com/ayushaahar/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	data, err := dataset.Load(cfg.DatasetDir)
	if err != nil {
		logger.Fatal("failed to load datasets", zap.String("dir", cfg.DatasetDir), zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	documents := store.NewDocumentStore(db)
	if err := documents.Migrate(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Redis only backs the weather cache; run without it if unreachable.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("redis unavailable, weather caching disabled", zap.Error(err))
			redisClient = nil
		}
	}

	weather := service.NewWeatherService(cfg.OpenWeatherAPIKey, redisClient, logger)
	ocr := service.NewOCRService(cfg.OCRAPIKey, logger)
	parser := service.NewRecipeParser(data, ocr, logger)
	swaps := service.NewSwapEngine(data)
	engine := service.NewDietChartEngine(data, weather, parser, logger)

	srv := server.New(server.Deps{
		Config:  cfg,
		Logger:  logger,
		Data:    data,
		Store:   documents,
		Engine:  engine,
		Parser:  parser,
		Swaps:   swaps,
		Weather: weather,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Fatal("server error", zap.Error(err))
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("forced shutdown", zap.Error(err))
		}
	}
}
