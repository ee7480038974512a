package queries

import (
	"errors"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery loads a user profile. The password hash is never returned.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUserQueryResponse struct {
	ID          kernel.UUID
	FirstName   string
	LastName    string
	PhoneNumber int64
	Email       string
	Group       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
