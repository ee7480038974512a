package queries

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists the orders of a user, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	page   int

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(userID kernel.UUID, page int) (GetUserOrdersQuery, error) {
	if err := errors.Join(userID.Validate(), validatePage(page)); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetUserOrdersQuery) Page() int {
	return q.page
}
