package ports

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
)

// OrderRepository is the write-side persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order with its lines. A second order for the same
	// (owner, idempotency key) fails with *errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, payment and shipping back. It succeeds only if the
	// stored version still equals aggregate.Version(); otherwise it returns
	// *errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order or returns *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// It must run inside UnitOfWork.Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByIdempotencyKey returns the owner's order created with key or
	// *errs.ObjectNotFoundError.
	FindByIdempotencyKey(ctx context.Context, ownerID kernel.UUID, key string) (*order.Order, error)

	// GetPendingCreatedBefore returns up to limit pending orders created before
	// cutoff, oldest first, locked and skipping rows other workers hold.
	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error)
}

// Page selects a window of a newest-first listing. Limit 0 means no limit.
type Page struct {
	Number int
	Limit  int
}

// Offset is the number of rows to skip for this page.
func (p Page) Offset() int {
	if p.Limit <= 0 || p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// OrderReader is the read-side contract used by queries.
type OrderReader interface {
	// ListByOwner returns the owner's orders, newest first.
	ListByOwner(ctx context.Context, ownerID kernel.UUID, page Page) ([]*order.Order, error)

	// GetByIDForOwner returns nil, nil when no such order exists for the owner.
	GetByIDForOwner(ctx context.Context, id, ownerID kernel.UUID) (*order.Order, error)
}
