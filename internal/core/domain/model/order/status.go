package order

import (
	"errors"
	"fmt"

	"checkout/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every TransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status is the order lifecycle state.
//
//	pending ──confirm──> confirmed ──ship──> shipped ──deliver──> delivered
//	   │
//	   └──cancel──> canceled
//
// Nothing moves backward; delivered and canceled are terminal.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Pending
	Confirmed
	Shipped
	Delivered
	Canceled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Confirmed: "confirmed",
	Shipped:   "shipped",
	Delivered: "delivered",
	Canceled:  "canceled",
}

// Operation is a command that may move an order to another status.
type Operation int

const (
	OpConfirmPayment Operation = iota + 1
	OpShip
	OpDeliver
	OpCancel
)

var operationNames = map[Operation]string{
	OpConfirmPayment: "confirm payment",
	OpShip:           "ship",
	OpDeliver:        "mark delivered",
	OpCancel:         "cancel",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown operation"
}

type transitionKey struct {
	from Status
	op   Operation
}

// transitions is the complete lifecycle table. A (status, operation) pair
// missing here is an invalid transition.
var transitions = map[transitionKey]Status{
	{Pending, OpConfirmPayment}: Confirmed,
	{Confirmed, OpShip}:         Shipped,
	{Shipped, OpDeliver}:        Delivered,
	{Pending, OpCancel}:         Canceled,
}

// TransitionError reports an operation that the current status does not allow.
type TransitionError struct {
	From Status
	Op   Operation
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s", ErrInvalidTransition, e.Op, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StatusFromString parses the persisted/API representation.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// Next returns the status reached by applying op, or a *TransitionError.
func (s Status) Next(op Operation) (Status, error) {
	next, ok := transitions[transitionKey{from: s, op: op}]
	if !ok {
		return Unknown, &TransitionError{From: s, Op: op}
	}
	return next, nil
}

// Allows reports whether op is legal from s.
func (s Status) Allows(op Operation) bool {
	_, ok := transitions[transitionKey{from: s, op: op}]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}
