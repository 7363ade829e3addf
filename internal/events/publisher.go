package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// Event type header values carried on every roster message.
const (
	EventTypeSignedUp     = "roster.participant_signed_up"
	EventTypeUnregistered = "roster.participant_unregistered"
)

// Publisher defines the roster event feed contract.
type Publisher interface {
	PublishSignedUp(ctx context.Context, event ParticipantSignedUp) error
	PublishUnregistered(ctx context.Context, event ParticipantUnregistered) error
}

// NoopPublisher is a no-op implementation, used when no brokers are configured.
type NoopPublisher struct{}

// PublishSignedUp performs no action.
func (NoopPublisher) PublishSignedUp(context.Context, ParticipantSignedUp) error { return nil }

// PublishUnregistered performs no action.
func (NoopPublisher) PublishUnregistered(context.Context, ParticipantUnregistered) error { return nil }

// messageWriter matches the subset of kafka.Writer the publisher relies on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes roster events to a single Kafka topic, keyed by
// activity name so per-activity ordering is preserved.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// PublishSignedUp emits a participant_signed_up message.
func (p *KafkaPublisher) PublishSignedUp(ctx context.Context, event ParticipantSignedUp) error {
	return p.publish(ctx, EventTypeSignedUp, event.Activity, event)
}

// PublishUnregistered emits a participant_unregistered message.
func (p *KafkaPublisher) PublishUnregistered(ctx context.Context, event ParticipantUnregistered) error {
	return p.publish(ctx, EventTypeUnregistered, event.Activity, event)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
