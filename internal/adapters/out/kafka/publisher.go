// Package kafka publishes delivery lifecycle events to a Kafka topic.
//
// Events are fire-and-forget from the caller's point of view: the command
// handlers publish after commit and only log failures, so the broker being
// down never blocks a delivery transition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"artmarket/internal/core/ports"
)

const produceTimeout = 10 * time.Second

// statusChangedEnvelope is the wire form of a delivery status change.
type statusChangedEnvelope struct {
	EventType         string    `json:"eventType"`
	OrderID           int64     `json:"orderId"`
	OrderKind         string    `json:"orderKind"`
	FromStatus        string    `json:"fromStatus"`
	ToStatus          string    `json:"toStatus"`
	DeliveryPartnerID *int64    `json:"deliveryPartnerId,omitempty"`
	ShippingFeeCents  *int64    `json:"shippingFeeCents,omitempty"`
	Override          bool      `json:"override"`
	OccurredAt        time.Time `json:"occurredAt"`
}

const eventTypeStatusChanged = "delivery.status-changed"

// Publisher sends delivery status change events through a franz-go client.
// Records are keyed by order reference so all transitions of one order land
// on the same partition, in order.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewPublisher connects to the given brokers and produces to topic.
// The caller owns the returned publisher and must Close it on shutdown.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(produceTimeout),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("artmarket-delivery"),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &Publisher{
		client: client,
		topic:  topic,
		logger: logger.With("component", "KafkaPublisher"),
	}, nil
}

// PublishStatusChanged produces one status change record and waits for broker
// acknowledgement.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event ports.DeliveryStatusChanged) error {
	data, err := json.Marshal(toEnvelope(event))
	if err != nil {
		return fmt.Errorf("encode status change event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(recordKey(event)),
		Value: data,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce status change event: %w", err)
	}

	p.logger.DebugContext(ctx, "published delivery status change",
		"topic", p.topic,
		"orderId", event.OrderID,
		"orderKind", event.OrderKind.String(),
		"to", event.To.String(),
	)
	return nil
}

// Close flushes buffered records and releases the client.
func (p *Publisher) Close() {
	p.client.Close()
}

func toEnvelope(event ports.DeliveryStatusChanged) statusChangedEnvelope {
	return statusChangedEnvelope{
		EventType:         eventTypeStatusChanged,
		OrderID:           event.OrderID,
		OrderKind:         event.OrderKind.String(),
		FromStatus:        event.From.String(),
		ToStatus:          event.To.String(),
		DeliveryPartnerID: event.PartnerID,
		ShippingFeeCents:  event.FeeCents,
		Override:          event.Override,
		OccurredAt:        event.OccurredAt,
	}
}

func recordKey(event ports.DeliveryStatusChanged) string {
	return fmt.Sprintf("%s:%d", event.OrderKind.String(), event.OrderID)
}
