package services

import (
	"context"
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/model/product"
)

// ErrProductNotFound is returned when a cart references a product the catalog does not know.
var ErrProductNotFound = errors.New("product not found")

// ProductFinder is the catalog lookup the builder needs.
type ProductFinder interface {
	FindProductsByIDs(ctx context.Context, ids []string) ([]product.Product, error)
}

// CartSnapshotBuilder turns cart items into immutable order lines using a
// single batched catalog lookup.
//
// For every item: the price is the cart's snapshot price, the name is the cart
// name or else the catalog name, the image is the catalog's first image.
// Lines come out in cart order. If any product is missing no lines are returned.
type CartSnapshotBuilder struct {
	catalog ProductFinder
}

func NewCartSnapshotBuilder(catalog ProductFinder) (*CartSnapshotBuilder, error) {
	if catalog == nil {
		return nil, errors.New("catalog is nil")
	}
	return &CartSnapshotBuilder{catalog: catalog}, nil
}

func (b *CartSnapshotBuilder) Build(ctx context.Context, c *cart.Cart) ([]order.Line, error) {
	if c.IsEmpty() {
		return nil, nil
	}

	products, err := b.catalog.FindProductsByIDs(ctx, c.ProductIDs())
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	byID := make(map[string]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]order.Line, 0, len(c.Items))
	for _, it := range c.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
		}

		name := it.Name
		if name == "" {
			name = p.Name
		}

		line, err := order.NewLine(p.ID, p.Code, name, it.Price, it.Quantity, p.FirstImageURL())
		if err != nil {
			return nil, fmt.Errorf("cart item %s: %w", it.ProductID, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}
