package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

type bidReceiver struct {
	logger *zap.Logger
}

func newBidReceiver(logger *zap.Logger) *bidReceiver {
	return &bidReceiver{logger: logger}
}

func (r *bidReceiver) Receive(_ context.Context, queue string, bid domain.Bid) error {
	r.logger.Info("bid received", zap.String("queue", queue), zap.String("bid_name", bid.Name))
	return nil
}
