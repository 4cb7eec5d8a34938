package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/worker"
)

type bidProcessor struct {
	workers *worker.Workers
	queue   string
}

// NewBidProcessor decodes bids arriving on queue and hands them to the bid receiver.
func NewBidProcessor(workers *worker.Workers, queue string) *bidProcessor {
	return &bidProcessor{
		workers: workers,
		queue:   queue,
	}
}

func (p *bidProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var bid domain.Bid
	if err := json.Unmarshal(t.Payload(), &bid); err != nil {
		return fmt.Errorf("process bid task json unmarshal failed: %w: %w", err, asynq.SkipRetry)
	}

	if err := p.workers.BidReceiver.Receive(ctx, p.queue, bid); err != nil {
		return fmt.Errorf("receive bid failed: %w", err)
	}

	return nil
}
