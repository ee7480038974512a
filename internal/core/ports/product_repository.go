package ports

import (
	"context"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"
)

// ProductRepository reads the catalog. The ordering core never writes products.
type ProductRepository interface {
	// GetByIDs returns the products that exist among ids. Unknown ids are
	// skipped without error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
