// Package kafka publishes order events from the outbox to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"checkout/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"

	// breakerFailureThreshold consecutive write failures open the breaker.
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// EventPublisher writes one message per outbox row, keyed by order id so all
// events of an order land on the same partition in order.
type EventPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewEventPublisher(brokers []string, topic string, logger *slog.Logger) *EventPublisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newEventPublisher(w, logger)
}

func newEventPublisher(w messageWriter, logger *slog.Logger) *EventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "KafkaEventPublisher")

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "kafka-order-events",
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &EventPublisher{writer: w, breaker: breaker}
}

func (p *EventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, kafkago.Message{
			Key:   []byte(msg.AggregateID.String()),
			Value: msg.Payload,
			Time:  msg.OccurredAt,
			Headers: []kafkago.Header{
				{Key: HeaderEventType, Value: []byte(msg.EventType)},
				{Key: HeaderEventID, Value: []byte(msg.EventID.String())},
			},
		})
	})
	if err != nil {
		return fmt.Errorf("publish %s event %s: %w", msg.EventType, msg.EventID, err)
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
