package ports

import (
	"context"

	"checkout/internal/core/domain/model/kernel"
)

type ChargeRequest struct {
	OrderID   kernel.UUID
	Amount    kernel.Money
	CardToken string
}

type ChargeResult struct {
	TransactionID string
	Provider      string
}

// PaymentGateway charges a tokenized card.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
