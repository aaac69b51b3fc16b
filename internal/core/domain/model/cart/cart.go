// Package cart is the read model of a shopper's active cart as the checkout
// sees it. Carts are owned by the cart service; checkout only reads and deletes them.
package cart

import (
	"checkout/internal/core/domain/model/kernel"
)

// Item is one cart entry. Price and Name are the snapshot the cart took when
// the product was added; Name may be empty.
type Item struct {
	ProductID string
	Quantity  int
	Price     kernel.Money
	Name      string
}

type Cart struct {
	ID      string
	OwnerID kernel.UUID
	Items   []Item
}

// IsEmpty reports whether there is nothing to check out. A nil cart is empty.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// ProductIDs returns the distinct product ids in item order.
func (c *Cart) ProductIDs() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(c.Items))
	ids := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}
