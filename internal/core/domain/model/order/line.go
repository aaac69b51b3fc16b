package order

import (
	"errors"
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// Line is one purchased product, frozen at checkout time. UnitPrice is the
// price the buyer saw in the cart, never a later catalog price.
type Line struct {
	productID   string
	productCode string
	name        string
	unitPrice   kernel.Money
	quantity    int
	imageURL    string
}

// NewLine builds an order line. imageURL may be empty.
func NewLine(productID, productCode, name string, unitPrice kernel.Money, quantity int, imageURL string) (Line, error) {
	var errList []error
	if strings.TrimSpace(productID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	if quantity < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}

	return Line{
		productID:   productID,
		productCode: productCode,
		name:        name,
		unitPrice:   unitPrice,
		quantity:    quantity,
		imageURL:    imageURL,
	}, nil
}

func (l Line) ProductID() string       { return l.productID }
func (l Line) ProductCode() string     { return l.productCode }
func (l Line) Name() string            { return l.name }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l Line) Quantity() int           { return l.quantity }
func (l Line) ImageURL() string        { return l.imageURL }

// Subtotal is UnitPrice multiplied by Quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulQty(l.quantity)
}
