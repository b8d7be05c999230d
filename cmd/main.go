package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/gwc-sys/StackHack.live-sub000/internal/adapter/execution"
	"github.com/gwc-sys/StackHack.live-sub000/internal/adapter/postgres/problemrepository"
	"github.com/gwc-sys/StackHack.live-sub000/internal/adapter/postgres/submissionrepository"
	"github.com/gwc-sys/StackHack.live-sub000/internal/adapter/redis/progressport"
	"github.com/gwc-sys/StackHack.live-sub000/internal/config"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/services/judge"
	logger2 "github.com/gwc-sys/StackHack.live-sub000/internal/global/logger"
	http2 "github.com/gwc-sys/StackHack.live-sub000/internal/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger2.Warn("No .env file loaded", "error", err)
	}

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting submission judging service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	executorClient := execution.NewClient(sysCfg.ExecutionConfig, logger)
	progressRepo := progressport.NewProgressRepository(redisClient, logger)
	problemRepo := problemrepository.NewProblemRepository(db, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)

	// services
	judgeSvc := judge.NewJudgeService(executorClient, progressRepo, sysCfg.ExecutionConfig, sysCfg.JudgeConfig, logger)
	serviceProvider := http2.NewServiceProvider(judgeSvc, problemRepo, submissionRepo)

	// server
	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, sysCfg.ServerConfig.ServiceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}

	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}
