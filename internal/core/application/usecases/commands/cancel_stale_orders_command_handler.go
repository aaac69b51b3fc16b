package commands

import (
	"context"
	"time"

	"checkout/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler cancels pending orders nobody paid for in
// time. All cancellations of one batch commit together.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) (*CancelStaleOrdersCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// Handle returns the number of orders canceled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	repo := uow.OrderRepository()
	stale, err := repo.GetPendingCreatedBefore(ctx, now.Add(-cmd.TTL()), cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, o := range stale {
		if err = o.Cancel(now); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
