// Package order is the checkout domain model: the Order aggregate, its lines
// and totals, the payment and shipping records and the status state machine.
//
// Every status change goes through Status.Next, which consults a single
// (status, operation) table; an illegal pair yields a *TransitionError
// wrapping ErrInvalidTransition. Each successful change records an Event that
// the persistence layer writes to the outbox in the same transaction.
package order
