package commands

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"
)

// ShipOrderCommandHandler moves a confirmed order to shipped.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) (*ShipOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &ShipOrderCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), nil, func(o *order.Order) error {
		return o.Ship(cmd.Carrier(), cmd.TrackingNumber(), h.now())
	})
}
