package facades

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// LikeEventsKafkaFacade publishes like events to Kafka.
// Messages are keyed by user id so one user's events stay ordered within a partition.
type LikeEventsKafkaFacade struct {
	writer KafkaWriter
}

// NewLikeEventsKafkaFacade creates a new facade over a Kafka writer.
func NewLikeEventsKafkaFacade(writer KafkaWriter) *LikeEventsKafkaFacade {
	return &LikeEventsKafkaFacade{writer: writer}
}

// Publish writes a single like event as JSON.
func (f *LikeEventsKafkaFacade) Publish(ctx context.Context, event models.LikeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal like event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write like event: %w", err)
	}

	logger.Log.Debugw("like event published", "event_id", event.EventID, "type", event.Type)
	return nil
}
