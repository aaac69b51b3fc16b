package order

import (
	"errors"
	"fmt"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the checkout aggregate root. Lines, amounts, address and owner are
// fixed at creation; only status, payment and shipping change afterwards, and
// only through the transition table in status.go.
type Order struct {
	id             kernel.UUID
	ownerID        kernel.UUID
	lines          []Line
	amounts        Amounts
	address        kernel.AddressSnapshot
	payment        Payment
	shipping       Shipping
	status         Status
	idempotencyKey string
	createdAt      time.Time
	updatedAt      time.Time

	// version is the optimistic-concurrency counter owned by the repository.
	version int64

	events        []Event
	isConstructed bool
}

// NewOrder creates a pending order with a pending payment and no shipment and
// records EventOrderCreated. amounts.ItemsTotal must equal the sum of line subtotals.
// idempotencyKey may be empty.
func NewOrder(
	id, ownerID kernel.UUID,
	lines []Line,
	amounts Amounts,
	address kernel.AddressSnapshot,
	idempotencyKey string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		payment:        NewPendingPayment(),
		shipping:       NewShipping(),
		status:         Pending,
		idempotencyKey: idempotencyKey,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setLines(lines),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}
	if err := o.setAmounts(amounts); err != nil {
		return nil, err
	}

	o.record(EventOrderCreated)
	return o, nil
}

// State is the full persisted form of an order, used by RestoreOrder.
type State struct {
	ID             kernel.UUID
	OwnerID        kernel.UUID
	Lines          []Line
	Amounts        Amounts
	Address        kernel.AddressSnapshot
	Payment        Payment
	Shipping       Shipping
	Status         Status
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// RestoreOrder rebuilds an order read from storage. No events are recorded.
func RestoreOrder(s State) (*Order, error) {
	if err := errors.Join(s.ID.Validate(), s.OwnerID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)

	return &Order{
		id:             s.ID,
		ownerID:        s.OwnerID,
		lines:          lines,
		amounts:        s.Amounts,
		address:        s.Address,
		payment:        s.Payment,
		shipping:       s.Shipping,
		status:         s.Status,
		idempotencyKey: s.IdempotencyKey,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		version:        s.Version,
		isConstructed:  true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) OwnerID() kernel.UUID            { return o.ownerID }
func (o *Order) Amounts() Amounts                { return o.amounts }
func (o *Order) Address() kernel.AddressSnapshot { return o.address }
func (o *Order) Payment() Payment                { return o.payment }
func (o *Order) Shipping() Shipping              { return o.shipping }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) IdempotencyKey() string          { return o.idempotencyKey }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }
func (o *Order) Version() int64                  { return o.version }

// Lines returns a copy; the order's lines cannot be modified.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) IsOwnedBy(ownerID kernel.UUID) bool {
	return o.ownerID.IsEqual(ownerID)
}

// ConfirmPayment marks the payment paid and the order confirmed. An order that
// is already paid is left untouched and changed is false.
func (o *Order) ConfirmPayment(transactionID, provider string, now time.Time) (changed bool, err error) {
	if o.payment.IsPaid() {
		return false, nil
	}
	if transactionID == "" {
		return false, errs.NewValueIsRequiredError("transactionId")
	}
	next, err := o.status.Next(OpConfirmPayment)
	if err != nil {
		return false, err
	}

	o.payment = o.payment.paid(transactionID, provider)
	o.status = next
	o.touch(now)
	o.record(EventPaymentConfirmed)
	return true, nil
}

// Ship hands the order to a carrier. Empty carrier falls back to DefaultCarrier
// and an empty tracking number is generated.
func (o *Order) Ship(carrier, trackingNumber string, now time.Time) error {
	next, err := o.status.Next(OpShip)
	if err != nil {
		return err
	}

	o.shipping = o.shipping.shipped(carrier, trackingNumber, now)
	o.status = next
	o.touch(now)
	o.record(EventOrderShipped)
	return nil
}

func (o *Order) MarkDelivered(now time.Time) error {
	next, err := o.status.Next(OpDeliver)
	if err != nil {
		return err
	}

	o.shipping = o.shipping.delivered(now)
	o.status = next
	o.touch(now)
	o.record(EventOrderDelivered)
	return nil
}

// Cancel is allowed only while the order is pending. Payment is not touched.
func (o *Order) Cancel(now time.Time) error {
	next, err := o.status.Next(OpCancel)
	if err != nil {
		return err
	}

	o.status = next
	o.touch(now)
	o.record(EventOrderCanceled)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// AdvanceVersion is called by the repository after a successful write.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) record(eventType EventType) {
	o.events = append(o.events, newEvent(eventType, o))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setAddress(address kernel.AddressSnapshot) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setAmounts(amounts Amounts) error {
	sum := kernel.ZeroMoney
	for _, l := range o.lines {
		sum = sum.Add(l.Subtotal())
	}
	if !sum.Equal(amounts.itemsTotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemsTotal",
			fmt.Errorf("%s does not match line subtotals %s", amounts.itemsTotal, sum),
		)
	}
	o.amounts = amounts
	return nil
}
