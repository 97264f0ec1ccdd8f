package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"marketplace/internal/domain"
)

// Publisher mirrors audit entries to a Kafka topic for external
// consumers (see cmd/auditlog). A nil *Publisher is a no-op so the
// pipeline is optional.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

// PublishAudit is best effort: delivery failures are logged, never
// surfaced to the caller.
func (p *Publisher) PublishAudit(ctx context.Context, e domain.AuditEntry) {
	if p == nil {
		return
	}
	value, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("marshal audit entry", zap.Error(err))
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Action),
		Value: value,
	})
	if err != nil {
		p.logger.Error("publish audit entry", zap.String("action", e.Action), zap.Error(err))
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
