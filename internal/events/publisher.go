// Package events publishes order lifecycle events to Kafka. Publishing is
// best-effort: the database transaction is the source of truth and a failed
// publish never fails the committed operation.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/andrevlb/sushi-api/internal/config"
	"github.com/andrevlb/sushi-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int64           `json:"order_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// PublishOrderEvent writes the event keyed by order id so events for one
// order stay in partition order.
func (p *Publisher) PublishOrderEvent(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
	}

	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2,
	}
	err = utils.Retry(cfg, func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, context.Canceled)

	if err != nil {
		eventsFailed.WithLabelValues(event.Type).Inc()
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	eventsPublished.WithLabelValues(event.Type).Inc()
	p.logger.Debug("order event published",
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
