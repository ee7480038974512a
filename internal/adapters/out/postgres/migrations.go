package postgres

import (
	"market/internal/adapters/out/postgres/orderrepo"
	"market/internal/adapters/out/postgres/productrepo"
	"market/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables used by the repositories. Products
// come first because order prices are read from them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
}
