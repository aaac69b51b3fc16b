package commands

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a pending order on the owner's request.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) (*CancelOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ownerID := cmd.OwnerID()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), &ownerID, func(o *order.Order) error {
		return o.Cancel(h.now())
	})
}
