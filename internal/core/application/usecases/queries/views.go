package queries

import (
	"time"

	"market/internal/core/domain/model/kernel"
)

// ProductView is a catalog entry as shown to customers.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	SKU         string
	Brand       string
	Category    string
	Description string
	Unit        string
	Weight      float64
	Price       kernel.Money
}

// OrderSummary is a row of the order history of a user.
type OrderSummary struct {
	ID           kernel.UUID
	Status       string
	Total        kernel.Money
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerSummary identifies the owner of an order. Its fields are empty when
// the owner row no longer exists.
type OwnerSummary struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
}
