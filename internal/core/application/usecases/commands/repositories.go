// Package commands contains the checkout operations that change state.
// Every handler validates its command, opens a unit of work, re-reads the
// order under a row lock when it mutates one, applies the domain transition
// and commits.
package commands

import (
	"context"
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for commands that touch orders only.
	// Order events reach the outbox through the unit of work itself.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW is used by the relay, which never touches orders.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

// ErrOrderNotFound is returned when an order does not exist or belongs to
// someone else. Errors carrying it also match errs.ErrObjectNotFound.
var ErrOrderNotFound = errors.New("order not found")

func orderNotFound(id kernel.UUID) error {
	return fmt.Errorf("%w: %w", ErrOrderNotFound, errs.NewObjectNotFoundError("orderId", id))
}
