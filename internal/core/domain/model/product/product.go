// Package product is the catalog's view of a product as used at checkout.
package product

// Product carries only what an order line copies from the catalog. Price is
// deliberately absent: orders are priced from the cart snapshot.
type Product struct {
	ID        string
	Code      string
	Name      string
	ImageURLs []string
}

// FirstImageURL returns the first image or "" when there is none.
func (p Product) FirstImageURL() string {
	for _, u := range p.ImageURLs {
		if u != "" {
			return u
		}
	}
	return ""
}
