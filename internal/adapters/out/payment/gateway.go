// Package payment holds the card payment gateway used at checkout. The only
// implementation is a mock provider that approves every well-formed charge.
package payment

import (
	"context"
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

const MockProvider = "mock"

type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Charge(ctx context.Context, req ports.ChargeRequest) (ports.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ChargeResult{}, err
	}
	if err := req.OrderID.Validate(); err != nil {
		return ports.ChargeResult{}, err
	}
	if strings.TrimSpace(req.CardToken) == "" {
		return ports.ChargeResult{}, errs.NewValueIsRequiredError("cardToken")
	}
	if req.Amount.IsZero() {
		return ports.ChargeResult{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("nothing to charge"))
	}

	return ports.ChargeResult{
		TransactionID: "txn_" + kernel.RandomToken(12),
		Provider:      MockProvider,
	}, nil
}
