package queries

import (
	"math"

	"market/internal/pkg/errs"
)

// DefaultPageSize is the number of items returned per page.
const DefaultPageSize = 10

// Page is one page of a listing. Count is the number of items in Data, not
// the total number of matching rows.
type Page[T any] struct {
	Count int
	Data  []T
}

func newPage[T any](data []T) Page[T] {
	return Page[T]{Count: len(data), Data: data}
}

func validatePage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt32)
	}
	return nil
}

func offset(page int) int {
	return (page - 1) * DefaultPageSize
}
