package ports

import (
	"context"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/product"
	"checkout/internal/core/domain/model/user"
)

// CartStore gives checkout access to the cart service's data.
type CartStore interface {
	// FindActiveCart returns nil, nil when the owner has no active cart.
	FindActiveCart(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error)

	DeleteCart(ctx context.Context, cartID string) error
}

// ProductCatalog resolves products in one batched call. Unknown ids are
// simply absent from the result.
type ProductCatalog interface {
	FindProductsByIDs(ctx context.Context, ids []string) ([]product.Product, error)
}

// UserDirectory looks up customers and their address books.
type UserDirectory interface {
	// FindUser returns nil, nil when the user does not exist.
	FindUser(ctx context.Context, id kernel.UUID) (*user.User, error)
}
