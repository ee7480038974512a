package ports

import (
	"context"
)

// UnitOfWork is one database transaction shared by the repositories it hands
// out. Callers Begin, defer Rollback and Commit explicitly; Rollback after a
// successful Commit is a no-op error that callers ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	UserRepository() UserRepository
}
