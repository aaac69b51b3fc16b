package services

import (
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
)

var (
	// FreeShippingThreshold is the items total from which shipping is free.
	FreeShippingThreshold = kernel.MustMoney("1000")

	// FlatShippingFee is charged below FreeShippingThreshold.
	FlatShippingFee = kernel.MustMoney("49.9")
)

// PricingEngine computes order totals. It is pure: the same lines always
// produce the same Amounts.
//
//	itemsTotal    = Σ unitPrice × quantity
//	shippingFee   = 0 if itemsTotal ≥ 1000, else 49.9
//	discountTotal = 0
//	taxTotal      = 0
//	grandTotal    = itemsTotal + shippingFee + taxTotal − discountTotal
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Calculate prices the given lines. Lines are already validated (quantity ≥ 1,
// non-negative price), so an empty slice simply yields a zero items total.
func (PricingEngine) Calculate(lines []order.Line) (order.Amounts, error) {
	itemsTotal := kernel.ZeroMoney
	for _, l := range lines {
		itemsTotal = itemsTotal.Add(l.Subtotal())
	}

	shippingFee := FlatShippingFee
	if itemsTotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shippingFee = kernel.ZeroMoney
	}

	return order.NewAmounts(itemsTotal, shippingFee, kernel.ZeroMoney, kernel.ZeroMoney)
}
