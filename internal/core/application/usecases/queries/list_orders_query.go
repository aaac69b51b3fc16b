// Package queries contains read operations. Order listings go through the
// ports.OrderReader; the shipping view reads the orders table directly.
package queries

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

const MaxPageLimit = 100

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists an owner's orders, newest first. A zero limit returns
// every order and ignores page.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	page    ports.Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(ownerID kernel.UUID, page, limit int) (ListOrdersQuery, error) {
	var pageErr error
	if limit != 0 && page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	var limitErr error
	if limit < 0 || limit > MaxPageLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}

	if err := errors.Join(ownerID.Validate(), pageErr, limitErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		ownerID: ownerID,
		page:    ports.Page{Number: page, Limit: limit},
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) OwnerID() kernel.UUID { return q.ownerID }
func (q ListOrdersQuery) Page() ports.Page     { return q.page }
