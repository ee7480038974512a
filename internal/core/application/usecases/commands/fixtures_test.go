package commands_test

import (
	"testing"
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func fixtureProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "product "+price, "SKU-"+price, m)
	require.NoError(t, err)
	return p
}

func fixtureUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Ada", "Lovelace", 5550100, "ada@example.com", "hash", fixtureTime)
	require.NoError(t, err)
	return u
}

func fixtureOrder(t *testing.T, userID kernel.UUID, products ...*product.Product) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, products, fixtureTime)
	require.NoError(t, err)
	return o
}
