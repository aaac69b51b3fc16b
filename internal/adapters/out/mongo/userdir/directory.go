// Package userdir reads customers and their saved addresses.
package userdir

import (
	"context"
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "users"

type userDocument struct {
	ID        string            `bson:"_id"`
	Addresses []addressDocument `bson:"addresses"`
}

type addressDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Address   string             `bson:"address"`
	City      string             `bson:"city"`
	District  string             `bson:"district"`
	Zip       string             `bson:"zip"`
	IsDefault bool               `bson:"is_default"`
}

type MongoUserDirectory struct {
	collection *mongo.Collection
}

func NewMongoUserDirectory(db *mongo.Database) *MongoUserDirectory {
	return &MongoUserDirectory{collection: db.Collection(CollectionName)}
}

func (d *MongoUserDirectory) FindUser(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var doc userDocument
	err := d.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	addresses := make([]user.Address, 0, len(doc.Addresses))
	for _, a := range doc.Addresses {
		addresses = append(addresses, user.Address{
			ID:        a.ID.Hex(),
			Title:     a.Title,
			Street:    a.Address,
			City:      a.City,
			District:  a.District,
			Zip:       a.Zip,
			IsDefault: a.IsDefault,
		})
	}

	return &user.User{ID: id, Addresses: addresses}, nil
}
