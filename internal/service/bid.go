package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

type bidService struct {
	publisher   Publisher
	queue       string
	queueSecond string
	logger      *zap.Logger
}

func newBidService(publisher Publisher, queue string, queueSecond string, logger *zap.Logger) *bidService {
	return &bidService{
		publisher:   publisher,
		queue:       queue,
		queueSecond: queueSecond,
		logger:      logger,
	}
}

// CreateBid publishes cmd to the primary bid queue. The returned command only
// means the broker accepted it.
func (s *bidService) CreateBid(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error) {
	return s.publish(ctx, s.queue, cmd)
}

func (s *bidService) CreateBidSecond(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error) {
	return s.publish(ctx, s.queueSecond, cmd)
}

func (s *bidService) publish(ctx context.Context, queue string, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return cmd, err
	}

	s.logger.Debug("publishing bid", zap.String("queue", queue), zap.String("bid_name", cmd.Name))
	if err := s.publisher.Publish(ctx, queue, cmd); err != nil {
		return cmd, err
	}
	return cmd, nil
}
