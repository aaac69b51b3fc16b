package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

var ErrMissingCardToken = errs.NewBusinessRuleError("cardToken", "card token is required")

// ConfirmPaymentCommandHandler charges the card and confirms the order.
// Confirming an already paid order returns it unchanged without charging again.
// The order row stays locked from read to write, so two concurrent
// confirmations cannot both charge.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	now        func() time.Time
}

func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) (*ConfirmPaymentCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if gateway == nil {
		return nil, errs.NewValueIsRequiredError("gateway")
	}
	return &ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, orderNotFound(cmd.OrderID())
		}
		return nil, err
	}
	if !o.IsOwnedBy(cmd.OwnerID()) {
		return nil, orderNotFound(cmd.OrderID())
	}

	if strings.TrimSpace(cmd.CardToken()) == "" {
		return nil, ErrMissingCardToken
	}

	if o.Payment().IsPaid() {
		return o, nil
	}

	if _, err = o.Status().Next(order.OpConfirmPayment); err != nil {
		return nil, err
	}

	charge, err := h.gateway.Charge(ctx, ports.ChargeRequest{
		OrderID:   o.ID(),
		Amount:    o.Amounts().GrandTotal(),
		CardToken: cmd.CardToken(),
	})
	if err != nil {
		return nil, fmt.Errorf("charge card: %w", err)
	}

	if _, err = o.ConfirmPayment(charge.TransactionID, charge.Provider, h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
