package commands

import (
	"errors"
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

const maxShippingFieldLength = 64

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
)

// ShipOrderCommand is an admin operation. Empty carrier and tracking number
// fall back to the defaults chosen by the order.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewShipOrderCommand(orderID kernel.UUID, carrier, trackingNumber string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		carrier:        strings.TrimSpace(carrier),
		trackingNumber: strings.TrimSpace(trackingNumber),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		checkLength("carrier", cmd.carrier),
		checkLength("trackingNo", cmd.trackingNumber),
	); err != nil {
		return ShipOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

func (c ShipOrderCommand) OrderID() kernel.UUID   { return c.orderID }
func (c ShipOrderCommand) Carrier() string        { return c.carrier }
func (c ShipOrderCommand) TrackingNumber() string { return c.trackingNumber }

func checkLength(param, value string) error {
	if len(value) > maxShippingFieldLength {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("length %d exceeds %d", len(value), maxShippingFieldLength))
	}
	return nil
}
