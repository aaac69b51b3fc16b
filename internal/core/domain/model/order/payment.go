package order

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

const (
	DefaultPaymentMethod   = "card"
	DefaultPaymentProvider = "mock"
)

// PaymentStatus tracks the payment attached to an order.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:  "pending",
	PaymentPaid:     "paid",
	PaymentFailed:   "failed",
	PaymentRefunded: "refunded",
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid payment status", s))
}

// Payment is the payment part of an order. It is replaced as a whole on change.
type Payment struct {
	method        string
	status        PaymentStatus
	transactionID string
	provider      string
}

// NewPendingPayment is the payment every new order starts with.
func NewPendingPayment() Payment {
	return Payment{
		method:   DefaultPaymentMethod,
		status:   PaymentPending,
		provider: DefaultPaymentProvider,
	}
}

// RestorePayment rebuilds a payment read from storage.
func RestorePayment(method string, status PaymentStatus, transactionID, provider string) Payment {
	return Payment{method: method, status: status, transactionID: transactionID, provider: provider}
}

func (p Payment) Method() string        { return p.method }
func (p Payment) Status() PaymentStatus { return p.status }
func (p Payment) TransactionID() string { return p.transactionID }
func (p Payment) Provider() string      { return p.provider }
func (p Payment) IsPaid() bool          { return p.status == PaymentPaid }

func (p Payment) paid(transactionID, provider string) Payment {
	p.status = PaymentPaid
	p.transactionID = transactionID
	if provider != "" {
		p.provider = provider
	}
	return p
}
