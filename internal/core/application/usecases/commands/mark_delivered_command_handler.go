package commands

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"
)

// MarkDeliveredCommandHandler moves a shipped order to delivered.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) (*MarkDeliveredCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), nil, func(o *order.Order) error {
		return o.MarkDelivered(h.now())
	})
}
