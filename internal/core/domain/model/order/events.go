package order

import (
	"time"

	"checkout/internal/core/domain/model/kernel"
)

// EventType names an order-changed event on the wire and in the outbox.
type EventType string

const (
	EventOrderCreated     EventType = "order.created"
	EventPaymentConfirmed EventType = "order.payment_confirmed"
	EventOrderShipped     EventType = "order.shipped"
	EventOrderDelivered   EventType = "order.delivered"
	EventOrderCanceled    EventType = "order.canceled"
)

// Event is recorded by the Order aggregate on every state change and drained
// by the unit of work into the outbox on commit.
type Event struct {
	id             kernel.UUID
	eventType      EventType
	orderID        kernel.UUID
	ownerID        kernel.UUID
	status         Status
	paymentStatus  PaymentStatus
	shippingStatus ShippingStatus
	grandTotal     kernel.Money
	occurredAt     time.Time
}

func newEvent(eventType EventType, o *Order) Event {
	return Event{
		id:             kernel.NewUUID(),
		eventType:      eventType,
		orderID:        o.id,
		ownerID:        o.ownerID,
		status:         o.status,
		paymentStatus:  o.payment.status,
		shippingStatus: o.shipping.status,
		grandTotal:     o.amounts.grandTotal,
		occurredAt:     o.updatedAt,
	}
}

func (e Event) ID() kernel.UUID                { return e.id }
func (e Event) Type() EventType                { return e.eventType }
func (e Event) OrderID() kernel.UUID           { return e.orderID }
func (e Event) OwnerID() kernel.UUID           { return e.ownerID }
func (e Event) Status() Status                 { return e.status }
func (e Event) PaymentStatus() PaymentStatus   { return e.paymentStatus }
func (e Event) ShippingStatus() ShippingStatus { return e.shippingStatus }
func (e Event) GrandTotal() kernel.Money       { return e.grandTotal }
func (e Event) OccurredAt() time.Time          { return e.occurredAt }
