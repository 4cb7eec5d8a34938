package client

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/queue/task"
)

var publishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "queue_published_total",
		Help: "Messages handed to the broker, by routing key and result.",
	},
	[]string{"queue", "result"},
)

// Enqueuer is the part of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Publisher enqueues messages once, without retries. A nil error means the broker
// accepted the message, not that it was consumed.
type Publisher struct {
	enqueuer Enqueuer
	logger   *zap.Logger
}

func NewPublisher(enqueuer Enqueuer, logger *zap.Logger) *Publisher {
	return &Publisher{
		enqueuer: enqueuer,
		logger:   logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, message any) error {
	t, err := task.NewMessageTask(routingKey, message)
	if err != nil {
		publishedTotal.WithLabelValues(routingKey, "error").Inc()
		return err
	}

	info, err := p.enqueuer.EnqueueContext(ctx, t, asynq.Queue(routingKey), asynq.MaxRetry(0))
	if err != nil {
		publishedTotal.WithLabelValues(routingKey, "error").Inc()
		p.logger.Error("enqueue failed", zap.String("queue", routingKey), zap.Error(err))
		return fmt.Errorf("enqueue to %s failed: %w", routingKey, err)
	}

	publishedTotal.WithLabelValues(routingKey, "ok").Inc()
	p.logger.Debug("message published", zap.String("queue", routingKey), zap.String("task_id", info.ID))
	return nil
}
