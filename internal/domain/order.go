package domain

import (
	"strings"
	"time"
)

// Order is an append-only record of a customer placing an order.
type Order struct {
	ID              int64
	CustomerAddress Address
	ProductID       string
	CreatedAt       time.Time
}

func NewOrder(customer Address, productID string) (*Order, error) {
	if customer == "" {
		return nil, NewMissingRequiredFieldError("customer address")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, NewMissingRequiredFieldError("product id")
	}
	return &Order{
		CustomerAddress: customer,
		ProductID:       productID,
	}, nil
}

// OrderLine is an order with its product resolved against the catalog.
type OrderLine struct {
	Order   Order
	Product Product
	Known   bool
}

// ResolveOrder resolves an order's product. Unknown product ids fall back to
// the id as the name and a zero price.
func ResolveOrder(c *Catalog, o Order) OrderLine {
	p, err := c.Lookup(o.ProductID)
	if err != nil {
		return OrderLine{
			Order:   o,
			Product: Product{ID: o.ProductID, Name: o.ProductID},
		}
	}
	return OrderLine{Order: o, Product: p, Known: true}
}
