// Package catalogcache puts a Redis read-through cache in front of a
// ProductCatalog. Only the fields an order line copies are cached; prices are
// never read from the catalog, so a stale entry cannot change order totals.
package catalogcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"checkout/internal/core/domain/model/product"
	"checkout/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 10 * time.Minute

type cachedProduct struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	ImageURLs []string `json:"imageUrls,omitempty"`
}

type CachedProductCatalog struct {
	inner   ports.ProductCatalog
	client  redis.Cmdable
	baseTTL time.Duration
	logger  *slog.Logger
}

func NewCachedProductCatalog(
	inner ports.ProductCatalog,
	client redis.Cmdable,
	baseTTL time.Duration,
	logger *slog.Logger,
) *CachedProductCatalog {
	if baseTTL <= 0 {
		baseTTL = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProductCatalog{
		inner:   inner,
		client:  client,
		baseTTL: baseTTL,
		logger:  logger.With("component", "CatalogCache"),
	}
}

// FindProductsByIDs serves what it can from Redis with one MGET and asks the
// inner catalog for the rest. Redis failures degrade to the inner catalog.
func (c *CachedProductCatalog) FindProductsByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cacheKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		return c.inner.FindProductsByIDs(ctx, ids)
	}

	products := make([]product.Product, 0, len(ids))
	missing := make([]string, 0)
	for i, v := range values {
		p, ok := decode(v)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		products = append(products, p)
	}
	if len(missing) == 0 {
		return products, nil
	}

	fetched, err := c.inner.FindProductsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	c.store(ctx, fetched)

	return append(products, fetched...), nil
}

func (c *CachedProductCatalog) store(ctx context.Context, products []product.Product) {
	if len(products) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, p := range products {
		data, err := json.Marshal(cachedProduct{ID: p.ID, Code: p.Code, Name: p.Name, ImageURLs: p.ImageURLs})
		if err != nil {
			c.logger.WarnContext(ctx, "marshal product failed", "productId", p.ID, "error", err)
			continue
		}
		pipe.Set(ctx, cacheKey(p.ID), data, c.ttl())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
}

// ttl spreads expiry over baseTTL plus up to a fifth of it so entries written
// together do not expire together.
func (c *CachedProductCatalog) ttl() time.Duration {
	return c.baseTTL + time.Duration(rand.Int64N(int64(c.baseTTL/5)+1))
}

func decode(v any) (product.Product, bool) {
	s, ok := v.(string)
	if !ok {
		return product.Product{}, false
	}
	var cp cachedProduct
	if err := json.Unmarshal([]byte(s), &cp); err != nil || cp.ID == "" {
		return product.Product{}, false
	}
	return product.Product{ID: cp.ID, Code: cp.Code, Name: cp.Name, ImageURLs: cp.ImageURLs}, true
}

func cacheKey(productID string) string {
	return fmt.Sprintf("checkout:product:%s", productID)
}
