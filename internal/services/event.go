package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes user activity events.
type EventPublisher interface {
	Publish(ctx context.Context, userID uuid.UUID, action, subject string)
}

// KafkaEventPublisher publishes activity events to Kafka. Publishing is
// best-effort: failures are logged and never fail the user-facing operation.
type KafkaEventPublisher struct {
	writer KafkaWriter
}

// NewKafkaEventPublisher creates a new KafkaEventPublisher.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish writes an activity event to Kafka.
func (p *KafkaEventPublisher) Publish(ctx context.Context, userID uuid.UUID, action, subject string) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Action:    action,
		Subject:   subject,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "action", action, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "action", action)
	}
}
