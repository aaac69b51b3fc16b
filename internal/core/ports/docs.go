// Package ports declares the interfaces the checkout core needs from the
// outside world: order persistence and its unit of work, the outbox and
// broker, the cart/catalog/user collaborators and the payment gateway.
package ports
