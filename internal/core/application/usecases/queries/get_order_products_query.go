package queries

import (
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrGetOrderProductsQueryIsNotConstructed = errors.New(
	"GetOrderProductsQuery must be created via NewGetOrderProductsQuery constructor",
)

// GetOrderProductsQuery lists the products of an order in the order they were added.
type GetOrderProductsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	page    int

	guard guard.ConstructorGuard
}

func NewGetOrderProductsQuery(orderID kernel.UUID, page int) (GetOrderProductsQuery, error) {
	if err := errors.Join(orderID.Validate(), validatePage(page)); err != nil {
		return GetOrderProductsQuery{}, err
	}

	return GetOrderProductsQuery{
		orderID: orderID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProductsQueryIsNotConstructed)
}

func (q GetOrderProductsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderProductsQuery) Page() int {
	return q.page
}
