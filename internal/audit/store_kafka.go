package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"platerra/internal/platform/kafka/producer"
)

// MessageProducer is the producing side of the Kafka client the audit sink
// needs. *producer.Producer satisfies it.
type MessageProducer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaStore appends audit events to a Kafka topic. Reads are not supported;
// downstream consumers own the materialized history.
type KafkaStore struct {
	producer MessageProducer
	topic    string
}

// NewKafkaStore constructs a Kafka-backed audit sink.
func NewKafkaStore(p MessageProducer, topic string) *KafkaStore {
	return &KafkaStore{producer: p, topic: topic}
}

func (s *KafkaStore) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.producer.Produce(ctx, &producer.Message{
		Topic: s.topic,
		Key:   []byte(event.UserID),
		Value: payload,
		Headers: map[string]string{
			"action": event.Action,
		},
	})
}

func (s *KafkaStore) ListByUser(context.Context, string) ([]Event, error) {
	return nil, ErrNotFound
}
