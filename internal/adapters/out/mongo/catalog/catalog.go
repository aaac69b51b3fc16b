// Package catalog resolves products from the catalog service's collection.
package catalog

import (
	"context"
	"fmt"

	"checkout/internal/core/domain/model/product"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "products"

type productDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	MaterialNo string             `bson:"material_no"`
	Name       string             `bson:"name"`
	Images     []string           `bson:"images"`
}

type MongoProductCatalog struct {
	collection *mongo.Collection
}

func NewMongoProductCatalog(db *mongo.Database) *MongoProductCatalog {
	return &MongoProductCatalog{collection: db.Collection(CollectionName)}
}

// FindProductsByIDs loads all requested products with a single $in query.
// Ids that are not valid object ids cannot exist and are skipped.
func (c *MongoProductCatalog) FindProductsByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []product.Product{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"material_no": 1, "name": 1, "images": 1})
	cursor, err := c.collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]product.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, product.Product{
			ID:        d.ID.Hex(),
			Code:      d.MaterialNo,
			Name:      d.Name,
			ImageURLs: d.Images,
		})
	}
	return products, nil
}
