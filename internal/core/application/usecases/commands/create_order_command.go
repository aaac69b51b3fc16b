package commands

import (
	"errors"
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

// MaxIdempotencyKeyLength bounds client-supplied Idempotency-Key values.
const MaxIdempotencyKeyLength = 255

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand checks out the owner's active cart.
// addressID and idempotencyKey are optional.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID        kernel.UUID
	addressID      string
	idempotencyKey string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(ownerID kernel.UUID, addressID, idempotencyKey string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		addressID: strings.TrimSpace(addressID),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateOrderCommand) AddressID() string {
	return c.addressID
}

// IdempotencyKey is empty when the client did not send one.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > MaxIdempotencyKeyLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"idempotencyKey",
			fmt.Errorf("length %d exceeds %d", len(key), MaxIdempotencyKeyLength),
		)
	}
	c.idempotencyKey = key
	return nil
}
