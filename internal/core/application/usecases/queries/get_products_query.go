package queries

import (
	"errors"
	"strings"

	"market/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery browses the catalog. An empty name matches every product;
// otherwise the name is matched as a case-insensitive substring.
type GetProductsQuery struct { //nolint:recvcheck //using for validation
	page int
	name string

	guard guard.ConstructorGuard
}

func NewGetProductsQuery(page int, name string) (GetProductsQuery, error) {
	if err := validatePage(page); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		page:  page,
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) Page() int {
	return q.page
}

func (q GetProductsQuery) Name() string {
	return q.name
}
