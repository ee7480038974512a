package ports

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicate email returns an *errs.AlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists contact changes. A duplicate email returns an *errs.AlreadyExistsError.
	Update(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks up a user by its lower-cased email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
