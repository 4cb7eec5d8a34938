package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

type Workers struct {
	BidReceiver BidReceiver
}

type Deps struct {
	Logger *zap.Logger
}

// BidReceiver handles a bid delivered on one of the bid queues.
type BidReceiver interface {
	Receive(ctx context.Context, queue string, bid domain.Bid) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		BidReceiver: newBidReceiver(deps.Logger.Named("bid_receiver")),
	}
}
