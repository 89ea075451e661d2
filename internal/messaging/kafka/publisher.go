package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is a domain event ready to be published.
type Message struct {
	Topic         string
	Key           string
	EventType     string
	AggregateType string
	Payload       any
}

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// PublishTimeout bounds one write to the broker. The write is detached from
// the caller's cancellation since events follow a committed change.
var PublishTimeout = 2 * time.Second

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) Publisher {
	return &publisher{writer: writer}
}

func (p *publisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg.Payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", msg.EventType, err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(msg.EventType)},
			{Key: "aggregate_type", Value: []byte(msg.AggregateType)},
		},
	})
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Message) error {
	return nil
}
