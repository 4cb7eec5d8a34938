package asynqserver

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/config"
	"github.com/vibe-gaming/geo-api/internal/queue/processor"
	"github.com/vibe-gaming/geo-api/internal/worker"
)

// New builds a consumer sharing the given redis client. The caller owns the
// client and closes it after Run returns.
func New(rdb redis.UniversalClient, cfg config.Broker, workers *worker.Workers, logger *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(cfg, workers)
	srv := asynq.NewServerFromRedisClient(
		rdb,
		asynq.Config{
			Concurrency:     cfg.Concurrency,
			Queues:          queues,
			Logger:          logger.Sugar(),
			LogLevel:        asynq.WarnLevel,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
	)

	return srv, mux
}

func getQueues(cfg config.Broker, workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(cfg.BidQueue, processor.NewBidProcessor(workers, cfg.BidQueue))
	mux.Handle(cfg.BidQueueSecond, processor.NewBidProcessor(workers, cfg.BidQueueSecond))
	queues := map[string]int{
		cfg.BidQueue:       1,
		cfg.BidQueueSecond: 1,
	}
	return mux, queues
}

// Run consumes until ctx is done, then waits for in-flight tasks up to the
// configured shutdown timeout.
func Run(ctx context.Context, srv *asynq.Server, handler asynq.Handler) error {
	if err := srv.Start(handler); err != nil {
		return fmt.Errorf("start consumer failed: %w", err)
	}

	<-ctx.Done()
	srv.Shutdown()

	return ctx.Err()
}
