package order

import (
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// Amounts are the order totals. They are computed once at creation and stored;
// grandTotal = itemsTotal + shippingFee + taxTotal - discountTotal always holds.
type Amounts struct {
	itemsTotal    kernel.Money
	shippingFee   kernel.Money
	discountTotal kernel.Money
	taxTotal      kernel.Money
	grandTotal    kernel.Money
}

// NewAmounts derives grandTotal from its parts.
func NewAmounts(itemsTotal, shippingFee, discountTotal, taxTotal kernel.Money) (Amounts, error) {
	beforeDiscount := itemsTotal.Add(shippingFee).Add(taxTotal)
	if !beforeDiscount.GreaterThanOrEqual(discountTotal) {
		return Amounts{}, errs.NewValueIsInvalidErrorWithCause(
			"discountTotal",
			fmt.Errorf("discount %s exceeds %s", discountTotal, beforeDiscount),
		)
	}
	return Amounts{
		itemsTotal:    itemsTotal,
		shippingFee:   shippingFee,
		discountTotal: discountTotal,
		taxTotal:      taxTotal,
		grandTotal:    beforeDiscount.Sub(discountTotal),
	}, nil
}

// RestoreAmounts rebuilds stored totals and rejects rows whose grand total
// does not match its parts.
func RestoreAmounts(itemsTotal, shippingFee, discountTotal, taxTotal, grandTotal kernel.Money) (Amounts, error) {
	a, err := NewAmounts(itemsTotal, shippingFee, discountTotal, taxTotal)
	if err != nil {
		return Amounts{}, err
	}
	if !a.grandTotal.Equal(grandTotal) {
		return Amounts{}, errs.NewValueIsInvalidErrorWithCause(
			"grandTotal",
			fmt.Errorf("stored %s, computed %s", grandTotal, a.grandTotal),
		)
	}
	return a, nil
}

func (a Amounts) ItemsTotal() kernel.Money    { return a.itemsTotal }
func (a Amounts) ShippingFee() kernel.Money   { return a.shippingFee }
func (a Amounts) DiscountTotal() kernel.Money { return a.discountTotal }
func (a Amounts) TaxTotal() kernel.Money      { return a.taxTotal }
func (a Amounts) GrandTotal() kernel.Money    { return a.grandTotal }
