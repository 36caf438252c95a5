package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventPublisher defines the interface for publishing result events
type EventPublisher interface {
	PublishAttemptScored(ctx context.Context, event *AttemptScoredEvent) error
	Close() error
}

// KafkaEventPublisher implements EventPublisher using Watermill with Kafka
type KafkaEventPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

// PublisherConfig holds configuration for the event publisher
type PublisherConfig struct {
	KafkaBrokers []string
	TopicName    string
	Logger       *slog.Logger
}

// NewKafkaEventPublisher creates a new Kafka-based event publisher using Watermill
func NewKafkaEventPublisher(config PublisherConfig) (*KafkaEventPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisherConfig := kafka.PublisherConfig{
		Brokers:   config.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}

	publisher, err := kafka.NewPublisher(publisherConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &KafkaEventPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

// PublishAttemptScored publishes an attempt.scored event to Kafka
func (p *KafkaEventPublisher) PublishAttemptScored(ctx context.Context, event *AttemptScoredEvent) error {
	envelope := &ResultEvent{
		ID:        watermill.NewUUID(),
		Type:      EventAttemptScored,
		Timestamp: time.Now(),
		Source:    "exam-service",
		Data:      event,
	}

	eventBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt event: %w", err)
	}

	msg := message.NewMessage(envelope.ID, eventBytes)
	msg.Metadata.Set("event_type", string(envelope.Type))
	msg.Metadata.Set("source", envelope.Source)
	msg.Metadata.Set("timestamp", envelope.Timestamp.Format(time.RFC3339))

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish attempt event",
			"event_id", envelope.ID,
			"attempt_id", event.AttemptID,
			"error", err)
		return fmt.Errorf("failed to publish attempt event: %w", err)
	}

	return nil
}

// Close shuts down the underlying publisher
func (p *KafkaEventPublisher) Close() error {
	return p.publisher.Close()
}

// NoopEventPublisher drops events; used when no brokers are configured.
type NoopEventPublisher struct{}

func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) PublishAttemptScored(ctx context.Context, event *AttemptScoredEvent) error {
	return nil
}

func (p *NoopEventPublisher) Close() error {
	return nil
}
