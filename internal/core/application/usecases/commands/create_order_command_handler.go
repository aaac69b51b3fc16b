package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

var (
	ErrEmptyCart       = errs.NewBusinessRuleError("cart", "active cart is missing or empty")
	ErrAddressNotFound = errs.NewBusinessRuleError("address", "neither the selected nor a default address exists")
)

// LineSnapshotter freezes cart items into order lines.
type LineSnapshotter interface {
	Build(ctx context.Context, c *cart.Cart) ([]order.Line, error)
}

// OrderPricer computes order totals.
type OrderPricer interface {
	Calculate(lines []order.Line) (order.Amounts, error)
}

// CreateOrderCommandHandler turns the owner's active cart into a pending order.
//
// With an idempotency key the handler is safe to retry: an existing order for
// (owner, key) is returned unchanged and no cart is consumed, and a concurrent
// duplicate that loses the insert race resolves to the winner's order. The cart
// is deleted only after the order has been committed.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	carts      ports.CartStore
	users      ports.UserDirectory
	snapshots  LineSnapshotter
	pricer     OrderPricer
	logger     *slog.Logger
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartStore,
	users ports.UserDirectory,
	snapshots LineSnapshotter,
	pricer OrderPricer,
	logger *slog.Logger,
) (*CreateOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if carts == nil {
		return nil, errs.NewValueIsRequiredError("carts")
	}
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}
	if snapshots == nil {
		return nil, errs.NewValueIsRequiredError("snapshots")
	}
	if pricer == nil {
		return nil, errs.NewValueIsRequiredError("pricer")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CreateOrderCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		users:      users,
		snapshots:  snapshots,
		pricer:     pricer,
		logger:     logger.With("component", "create-order"),
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.IdempotencyKey() != "" {
		existing, err := h.findByKey(ctx, cmd.OwnerID(), cmd.IdempotencyKey())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	activeCart, err := h.carts.FindActiveCart(ctx, cmd.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("find active cart: %w", err)
	}
	if activeCart.IsEmpty() {
		// A same-key request may have checked out and removed the cart meanwhile.
		if cmd.IdempotencyKey() != "" {
			winner, findErr := h.findByKey(ctx, cmd.OwnerID(), cmd.IdempotencyKey())
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, ErrEmptyCart
	}

	address, err := h.resolveAddress(ctx, cmd.OwnerID(), cmd.AddressID())
	if err != nil {
		return nil, err
	}

	lines, err := h.snapshots.Build(ctx, activeCart)
	if err != nil {
		return nil, err
	}

	amounts, err := h.pricer.Calculate(lines)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.OwnerID(), lines, amounts, address, cmd.IdempotencyKey(), h.now())
	if err != nil {
		return nil, err
	}

	if err = h.persist(ctx, newOrder); err != nil {
		if errors.Is(err, errs.ErrConflict) && cmd.IdempotencyKey() != "" {
			winner, findErr := h.findByKey(ctx, cmd.OwnerID(), cmd.IdempotencyKey())
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, err
	}

	if err = h.carts.DeleteCart(ctx, activeCart.ID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete checked-out cart",
			"cart_id", activeCart.ID,
			"order_id", newOrder.ID().String(),
			"error", err)
	}

	return newOrder, nil
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, newOrder *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// findByKey returns nil, nil when the owner has no order for key.
func (h *CreateOrderCommandHandler) findByKey(ctx context.Context, ownerID kernel.UUID, key string) (*order.Order, error) {
	uow := h.uowFactory.Create()

	existing, err := uow.OrderRepository().FindByIdempotencyKey(ctx, ownerID, key)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (h *CreateOrderCommandHandler) resolveAddress(
	ctx context.Context,
	ownerID kernel.UUID,
	addressID string,
) (kernel.AddressSnapshot, error) {
	u, err := h.users.FindUser(ctx, ownerID)
	if err != nil {
		return kernel.AddressSnapshot{}, fmt.Errorf("find user: %w", err)
	}

	addr, ok := u.ResolveAddress(addressID)
	if !ok {
		return kernel.AddressSnapshot{}, ErrAddressNotFound
	}

	snapshot, err := addr.Snapshot()
	if err != nil {
		return kernel.AddressSnapshot{}, errors.Join(ErrAddressNotFound, err)
	}
	return snapshot, nil
}
