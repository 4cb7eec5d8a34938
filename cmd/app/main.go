package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/vibe-gaming/geo-api/internal/api/http"
	"github.com/vibe-gaming/geo-api/internal/broker"
	"github.com/vibe-gaming/geo-api/internal/config"
	"github.com/vibe-gaming/geo-api/internal/db"
	"github.com/vibe-gaming/geo-api/internal/queue/asynqserver"
	queueClient "github.com/vibe-gaming/geo-api/internal/queue/client"
	"github.com/vibe-gaming/geo-api/internal/repository"
	"github.com/vibe-gaming/geo-api/internal/server"
	"github.com/vibe-gaming/geo-api/internal/service"
	"github.com/vibe-gaming/geo-api/internal/worker"
	"github.com/vibe-gaming/geo-api/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	appLogger.Info("starting geo api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	ctx := context.Background()

	// Init database
	postgres, err := db.New(ctx, cfg.Database)
	if err != nil {
		appLogger.Error("postgres connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := postgres.Close(); err != nil {
			appLogger.Error("error when closing postgres", zap.Error(err))
		}
	}()
	appLogger.Info("postgres connection done")

	if cfg.Database.MigrationsEnabled {
		if err := db.Migrate(ctx, postgres.DB.DB, appLogger.Named("migrate")); err != nil {
			appLogger.Error("migrations failed", zap.Error(err))
			return
		}
	}

	// Init broker
	rdb, err := broker.NewRedis(cfg.Broker)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		return
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	// Shares rdb, which is closed above rather than through asynq.
	asynqClient := asynq.NewClientFromRedisClient(rdb)
	publisher := queueClient.NewPublisher(asynqClient, appLogger.Named("publisher"))

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(postgres.DB, appLogger)
	services := service.NewServices(service.Deps{
		Logger:    appLogger,
		Config:    cfg,
		Repos:     repos,
		Publisher: publisher,
	})

	// Queue consumer
	workers := worker.NewWorkers(worker.Deps{Logger: appLogger})
	consumer, mux := asynqserver.New(rdb, cfg.Broker, workers, appLogger.Named("asynq"))
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- asynqserver.Run(consumerCtx, consumer, mux)
	}()
	appLogger.Info("consumer started", zap.Strings("queues", []string{cfg.Broker.BidQueue, cfg.Broker.BidQueueSecond}))

	// HTTP Server
	var shuttingDown atomic.Bool
	handlers := apiHttp.NewHandlers(services, map[string]apiHttp.HealthCheck{
		"postgres": postgres.PingContext,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	}, &shuttingDown)

	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
	case err := <-consumerDone:
		appLogger.Error("consumer stopped unexpectedly", zap.Error(err))
		consumerDone <- nil
	}

	shuttingDown.Store(true)

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	stopConsumer()
	if err := <-consumerDone; err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("failed to stop consumer", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
