package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
)

// ConfirmPaymentCommand pays for an owner's order with a tokenized card.
// An empty token is accepted here and rejected by the handler once the order
// is known to exist.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	ownerID   kernel.UUID
	cardToken string

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID, ownerID kernel.UUID, cardToken string) (ConfirmPaymentCommand, error) {
	if err := errors.Join(orderID.Validate(), ownerID.Validate()); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		orderID:   orderID,
		ownerID:   ownerID,
		cardToken: cardToken,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID { return c.orderID }
func (c ConfirmPaymentCommand) OwnerID() kernel.UUID { return c.ownerID }
func (c ConfirmPaymentCommand) CardToken() string    { return c.cardToken }
