// Package ports defines the contracts between the market core and its
// infrastructure: repositories, the unit of work, status notifications and
// password hashing.
package ports

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded and saved together with their lines.
type OrderRepository interface {
	// Add persists a new order and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, total and timestamps and synchronises the lines:
	// lines no longer on the aggregate are deleted, new ones are inserted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its lines or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and its lines. Deleting a missing order returns
	// an *errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetEmptyInPreparing returns up to limit orders in PreparingForDelivery
	// without lines, oldest first.
	GetEmptyInPreparing(ctx context.Context, limit int) ([]*order.Order, error)
}
