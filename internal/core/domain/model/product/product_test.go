package product_test

import (
	"testing"

	"checkout/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
)

func TestProduct_FirstImageURL(t *testing.T) {
	assert.Empty(t, product.Product{}.FirstImageURL())
	assert.Equal(t, "https://cdn/a.jpg", product.Product{ImageURLs: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}}.FirstImageURL())
	assert.Equal(t, "https://cdn/b.jpg", product.Product{ImageURLs: []string{"", "https://cdn/b.jpg"}}.FirstImageURL())
}
