package queries

import (
	"errors"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/guard"
)

var (
	ErrGetShippingQueryIsNotConstructed = errors.New(
		"GetShippingQuery must be created via NewGetShippingQuery constructor",
	)
)

// GetShippingQuery reads the shipping state of an owner's order.
type GetShippingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShippingQuery(orderID, ownerID kernel.UUID) (GetShippingQuery, error) {
	if err := errors.Join(orderID.Validate(), ownerID.Validate()); err != nil {
		return GetShippingQuery{}, err
	}
	return GetShippingQuery{orderID: orderID, ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShippingQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingQueryIsNotConstructed)
}

func (q GetShippingQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetShippingQuery) OwnerID() kernel.UUID { return q.ownerID }

// GetShippingQueryResponse pairs the shipping record with the order status.
type GetShippingQueryResponse struct {
	OrderID        kernel.UUID
	Status         order.Status
	Carrier        string
	TrackingNumber string
	ShippingStatus order.ShippingStatus
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}
