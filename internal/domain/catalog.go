package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog is an immutable product lookup keyed by product id. It keeps the
// load order for menu rendering.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// NewCatalog validates every product and rejects duplicate ids.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := catalogKey(p.ID)
		if _, exists := c.byID[key]; exists {
			return nil, NewDuplicateProductError(p.ID)
		}
		c.byID[key] = p
		c.products = append(c.products, p)
	}

	return c, nil
}

// Lookup returns the product with the given id or ErrProductNotFound. Ids
// match case-insensitively.
func (c *Catalog) Lookup(id string) (Product, error) {
	p, ok := c.byID[catalogKey(id)]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// LookupByName matches a display name case-insensitively.
func (c *Catalog) LookupByName(name string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrProductNotFound
	}
	for _, p := range c.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Has reports whether id is a known product id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[catalogKey(id)]
	return ok
}

func catalogKey(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Products returns the catalog in load order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// DefaultProducts is the storefront's built-in catalog.
func DefaultProducts() []Product {
	return []Product{
		{ID: "1", Name: "Logo Design", UnitPrice: decimal.NewFromInt(1500), ReferenceLink: "https://dogadesigns.co.ke/catalog/logos"},
		{ID: "2", Name: "Business Card Design", UnitPrice: decimal.NewFromInt(1000), ReferenceLink: "https://dogadesigns.co.ke/catalog/business-cards"},
		{ID: "3", Name: "Poster Design", UnitPrice: decimal.NewFromInt(2000), ReferenceLink: "https://dogadesigns.co.ke/catalog/posters"},
		{ID: "4", Name: "Social Media Kit", UnitPrice: decimal.NewFromInt(3500), ReferenceLink: "https://dogadesigns.co.ke/catalog/social-media"},
		{ID: "5", Name: "Company Profile", UnitPrice: decimal.NewFromInt(5000), ReferenceLink: "https://dogadesigns.co.ke/catalog/company-profiles"},
	}
}
