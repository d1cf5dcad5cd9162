package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	OrderCreated       = "order_created"
	OrderStatusChanged = "order_status_changed"
	OrderDeleted       = "order_deleted"
)

// OrderEvent is the message written to the order-events topic for downstream
// analytics consumers.
type OrderEvent struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	OutletID    *uint     `json:"outletId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type Publisher struct {
	Writer *kafka.Writer
}

func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, ev OrderEvent) error {
	if p == nil || p.Writer == nil {
		return nil
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	if p == nil || p.Writer == nil {
		return nil
	}
	return p.Writer.Close()
}
