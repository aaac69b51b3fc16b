// Package cartstore reads active carts from the cart service's collection.
package cartstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "carts"
	StatusActive   = "active"
)

type cartDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Status    string             `bson:"status"`
	Items     []cartItemDocument `bson:"items"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type cartItemDocument struct {
	ProductID string  `bson:"product_id"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
	Name      string  `bson:"name,omitempty"`
}

type MongoCartStore struct {
	collection *mongo.Collection
}

func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{collection: db.Collection(CollectionName)}
}

// FindActiveCart returns the most recently updated active cart of the owner.
func (s *MongoCartStore) FindActiveCart(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": ownerID.String(), "status": StatusActive}
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	var doc cartDocument
	err := s.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return toDomain(ownerID, doc)
}

// DeleteCart removes the cart. Deleting a cart that is already gone is not an error.
func (s *MongoCartStore) DeleteCart(ctx context.Context, cartID string) error {
	oid, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("cartID", err)
	}

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func toDomain(ownerID kernel.UUID, doc cartDocument) (*cart.Cart, error) {
	items := make([]cart.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		price, err := kernel.NewMoney(decimal.NewFromFloat(it.Price).Round(kernel.MoneyScale))
		if err != nil {
			return nil, fmt.Errorf("cart %s item %s: %w", doc.ID.Hex(), it.ProductID, err)
		}
		items = append(items, cart.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
			Name:      it.Name,
		})
	}

	return &cart.Cart{
		ID:      doc.ID.Hex(),
		OwnerID: ownerID,
		Items:   items,
	}, nil
}
