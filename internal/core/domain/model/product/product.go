// Package product holds the catalog entry as seen by the ordering domain.
// Products are reference data: orders read their identity and price and never
// modify them.
package product

import (
	"errors"
	"strings"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"
	"market/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a priced catalog entry.
type Product struct {
	id    kernel.UUID
	name  string
	sku   string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct validates and creates a catalog entry. sku is optional.
func NewProduct(id kernel.UUID, name, sku string, price kernel.Money) (*Product, error) {
	p := &Product{sku: strings.TrimSpace(sku), guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(id kernel.UUID, name, sku string, price kernel.Money) (*Product, error) {
	return NewProduct(id, name, sku, price)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
