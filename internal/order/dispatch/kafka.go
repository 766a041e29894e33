package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/pkg/broker"
)

// KafkaDispatcher publishes the order as an event. It serves as the
// fallback channel when the deep-link path is unavailable, and gives
// downstream consumers a record either way.
type KafkaDispatcher struct {
	producer *broker.KafkaProducer
}

type OrderSubmittedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   *model.Order `json:"payload"`
	Summary   string       `json:"summary"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewKafkaDispatcher(producer *broker.KafkaProducer) *KafkaDispatcher {
	return &KafkaDispatcher{producer: producer}
}

func (d *KafkaDispatcher) Name() string { return "kafka" }

func (d *KafkaDispatcher) Dispatch(ctx context.Context, o *model.Order, summary string) (string, error) {
	event := OrderSubmittedEvent{
		EventID:   uuid.New().String(),
		EventType: "OrderSubmitted",
		Payload:   o,
		Summary:   summary,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal order event: %w", err)
	}
	if err := d.producer.Publish(ctx, []byte(o.ID), data); err != nil {
		return "", fmt.Errorf("publish order event: %w", err)
	}
	return "", nil
}
