package order

import (
	"fmt"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

const (
	DefaultCarrier       = "manual"
	trackingNumberPrefix = "TRK-"
	trackingTokenLength  = 8
)

// ShippingStatus tracks the parcel; it only ever moves none -> shipped -> delivered.
type ShippingStatus int

const (
	ShippingUnknown ShippingStatus = iota
	ShippingNone
	ShippingShipped
	ShippingDelivered
)

var shippingStatusNames = map[ShippingStatus]string{
	ShippingNone:      "none",
	ShippingShipped:   "shipped",
	ShippingDelivered: "delivered",
}

func (s ShippingStatus) String() string {
	if name, ok := shippingStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func ShippingStatusFromString(s string) (ShippingStatus, error) {
	for status, name := range shippingStatusNames {
		if name == s {
			return status, nil
		}
	}
	return ShippingUnknown, errs.NewValueIsInvalidErrorWithCause("shipping status", fmt.Errorf("%q is not a valid shipping status", s))
}

// Shipping is the shipment record embedded in an order.
type Shipping struct {
	carrier        string
	trackingNumber string
	status         ShippingStatus
	shippedAt      *time.Time
	deliveredAt    *time.Time
}

// NewShipping is the shipment state of an order that has not shipped yet.
func NewShipping() Shipping {
	return Shipping{carrier: DefaultCarrier, status: ShippingNone}
}

// RestoreShipping rebuilds a shipment read from storage.
func RestoreShipping(carrier, trackingNumber string, status ShippingStatus, shippedAt, deliveredAt *time.Time) Shipping {
	return Shipping{
		carrier:        carrier,
		trackingNumber: trackingNumber,
		status:         status,
		shippedAt:      shippedAt,
		deliveredAt:    deliveredAt,
	}
}

// NewTrackingNumber returns an opaque token such as "TRK-7F3A9C01".
func NewTrackingNumber() string {
	return trackingNumberPrefix + kernel.RandomToken(trackingTokenLength)
}

func (s Shipping) Carrier() string         { return s.carrier }
func (s Shipping) TrackingNumber() string  { return s.trackingNumber }
func (s Shipping) Status() ShippingStatus  { return s.status }
func (s Shipping) ShippedAt() *time.Time   { return s.shippedAt }
func (s Shipping) DeliveredAt() *time.Time { return s.deliveredAt }

func (s Shipping) shipped(carrier, trackingNumber string, at time.Time) Shipping {
	if carrier == "" {
		carrier = DefaultCarrier
	}
	if trackingNumber == "" {
		trackingNumber = NewTrackingNumber()
	}
	return Shipping{
		carrier:        carrier,
		trackingNumber: trackingNumber,
		status:         ShippingShipped,
		shippedAt:      &at,
		deliveredAt:    s.deliveredAt,
	}
}

func (s Shipping) delivered(at time.Time) Shipping {
	s.status = ShippingDelivered
	s.deliveredAt = &at
	return s
}
