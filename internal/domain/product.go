package domain

import (
	"errors"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

var productValidator = validator.New()

// Product is a catalog entry. Products are immutable once the catalog is built.
type Product struct {
	ID            string `validate:"required"`
	Name          string `validate:"required"`
	UnitPrice     decimal.Decimal
	ReferenceLink string `validate:"required,url"`
}

func NewProduct(id, name string, unitPrice decimal.Decimal, referenceLink string) (Product, error) {
	p := Product{
		ID:            id,
		Name:          name,
		UnitPrice:     unitPrice,
		ReferenceLink: referenceLink,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) Validate() error {
	if err := productValidator.Struct(p); err != nil {
		return NewInvalidProductError(p.ID, err)
	}
	if p.UnitPrice.IsNegative() {
		return NewInvalidProductError(p.ID, errors.New("price cannot be negative"))
	}
	return nil
}

// DisplayPrice renders the unit price with two decimal places.
func (p Product) DisplayPrice() string {
	return FormatPrice(p.UnitPrice)
}
