// Command auditlog tails the Kafka audit topic and prints each entry.
// It is a debugging companion for the API server's audit mirror.
package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"marketplace/internal/config"
	"marketplace/internal/domain"
	"marketplace/internal/logger"
)

const groupID = "audit-log-tail"

func main() {
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        groupID,
		Topic:          cfg.AuditTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer r.Close()

	log.Info("consuming audit topic",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.AuditTopic),
	)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shutdown signal received")
				return
			}
			log.Error("read message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		var e domain.AuditEntry
		if err := json.Unmarshal(m.Value, &e); err != nil {
			log.Warn("skipping malformed entry",
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
			continue
		}

		log.Info("audit",
			zap.String("action", e.Action),
			zap.String("detail", e.Detail),
			zap.String("by", e.By),
			zap.Time("at", e.At),
			zap.Int64("offset", m.Offset),
		)
	}
}
