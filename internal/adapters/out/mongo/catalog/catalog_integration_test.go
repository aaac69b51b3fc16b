package catalog

import (
	"context"
	"testing"

	mongoadapter "checkout/internal/adapters/out/mongo"
	"checkout/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestDB(t *testing.T) (*MongoProductCatalog, []primitive.ObjectID) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := mongoadapter.ConnectMongoDB(ctx, uri, "testdb")
	require.NoError(t, err)

	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}
	_, err = db.Collection(CollectionName).InsertMany(ctx, []any{
		productDocument{ID: ids[0], MaterialNo: "MAT-1", Name: "Mug", Images: []string{"https://img/1.jpg", "https://img/2.jpg"}},
		productDocument{ID: ids[1], MaterialNo: "MAT-2", Name: "Plate"},
		productDocument{ID: ids[2], MaterialNo: "MAT-3", Name: "Bowl"},
	})
	require.NoError(t, err)

	return NewMongoProductCatalog(db), ids
}

func TestMongoProductCatalog_FindProductsByIDs(t *testing.T) {
	catalog, ids := setupTestDB(t)
	ctx := t.Context()

	t.Run("returns only the requested products", func(t *testing.T) {
		got, err := catalog.FindProductsByIDs(ctx, []string{ids[0].Hex(), ids[1].Hex()})
		require.NoError(t, err)
		require.Len(t, got, 2)

		byID := make(map[string]product.Product, len(got))
		for _, p := range got {
			byID[p.ID] = p
		}
		mug := byID[ids[0].Hex()]
		assert.Equal(t, "MAT-1", mug.Code)
		assert.Equal(t, "Mug", mug.Name)
		assert.Equal(t, "https://img/1.jpg", mug.FirstImageURL())
		assert.Empty(t, byID[ids[1].Hex()].FirstImageURL())
	})

	t.Run("unknown and malformed ids are absent", func(t *testing.T) {
		got, err := catalog.FindProductsByIDs(ctx, []string{primitive.NewObjectID().Hex(), "nope", ids[2].Hex()})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ids[2].Hex(), got[0].ID)
	})

	t.Run("no valid ids skips the query", func(t *testing.T) {
		got, err := catalog.FindProductsByIDs(ctx, []string{"nope"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
