package order

import (
	"errors"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line attaches one product to an order. It keeps the product price so the
// order total can be recomputed without another catalog lookup.
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	price     kernel.Money
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewLine creates a line for productID priced at price.
func NewLine(id, productID kernel.UUID, price kernel.Money, createdAt time.Time) (*Line, error) {
	if err := errors.Join(id.Validate(), productID.Validate(), price.Validate()); err != nil {
		return nil, err
	}

	return &Line{
		id:        id,
		productID: productID,
		price:     price,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(id, productID kernel.UUID, price kernel.Money, createdAt time.Time) (*Line, error) {
	return NewLine(id, productID, price, createdAt)
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

func (l *Line) Price() kernel.Money {
	return l.price
}

func (l *Line) CreatedAt() time.Time {
	return l.createdAt
}
