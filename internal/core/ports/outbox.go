package ports

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/kernel"
)

// OutboxMessage is an order event waiting to be published.
type OutboxMessage struct {
	ID          int64
	EventID     kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges outbox rows. Rows are written by the
// unit of work on commit.
type OutboxRepository interface {
	// GetUnpublished returns up to limit unpublished messages in insertion
	// order, locking them and skipping rows locked by other relays.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
}

// EventPublisher delivers one outbox message to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
