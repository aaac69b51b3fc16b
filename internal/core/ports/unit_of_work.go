package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events recorded by aggregates
// passed to its repositories are written to the outbox when Commit succeeds.
type UnitOfWork interface {
	// Begin starts a transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit flushes pending domain events to the outbox and commits.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and any pending events.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the current transaction, if any.
	OrderRepository() OrderRepository

	// OutboxRepository is bound to the current transaction, if any.
	OutboxRepository() OutboxRepository
}
