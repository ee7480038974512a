package queries_test

import (
	"testing"

	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"GetOrder", queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		{"GetUser", queries.GetUserQuery{}.Validate, queries.ErrGetUserQueryIsNotConstructed},
		{"GetUserOrders", queries.GetUserOrdersQuery{}.Validate, queries.ErrGetUserOrdersQueryIsNotConstructed},
		{"GetOrderProducts", queries.GetOrderProductsQuery{}.Validate, queries.ErrGetOrderProductsQueryIsNotConstructed},
		{"GetProducts", queries.GetProductsQuery{}.Validate, queries.ErrGetProductsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.expected)
		})
	}
}

func TestNewGetUserOrdersQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetUserOrdersQuery(userID, 2)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.UserID().IsEqual(userID))
	assert.Equal(t, 2, query.Page())
}

func TestNewPagedQueries_PageBelowOne_ReturnsOutOfRange(t *testing.T) {
	for _, page := range []int{0, -1} {
		_, err := queries.NewGetUserOrdersQuery(kernel.NewUUID(), page)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewGetOrderProductsQuery(kernel.NewUUID(), page)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewGetProductsQuery(page, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewIDQueries_ZeroUUID_ReturnsRequired(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetUserQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetUserOrdersQuery(kernel.UUID{}, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetProductsQuery_TrimsName(t *testing.T) {
	query, err := queries.NewGetProductsQuery(1, "  tea ")

	require.NoError(t, err)
	assert.Equal(t, "tea", query.Name())
}
