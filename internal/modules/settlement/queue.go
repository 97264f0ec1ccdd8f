package settlement

import (
	"context"

	"go.uber.org/zap"
)

// Queue decouples inbound payment-completion events from the HTTP
// transport: the webhook handler enqueues, a single consumer goroutine
// applies. The provider redelivers on failure, so a dropped or failed
// event is logged, not retried here.
type Queue struct {
	ch      chan Event
	service *Service
	logger  *zap.Logger
}

func NewQueue(service *Service, logger *zap.Logger, buffer int) *Queue {
	return &Queue{
		ch:      make(chan Event, buffer),
		service: service,
		logger:  logger,
	}
}

func (q *Queue) Enqueue(ev Event) {
	q.ch <- ev
}

func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			q.logger.Info("settlement queue stopping")
			return
		case ev := <-q.ch:
			if err := q.service.ApplyPaymentCompleted(ctx, ev); err != nil {
				q.logger.Error("apply payment completion",
					zap.String("kind", string(ev.Kind)),
					zap.String("transaction_id", ev.ID),
					zap.Error(err),
				)
			}
		}
	}
}
