package queries

import (
	"context"

	"market/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderProductsQueryHandler(db *gorm.DB) GetOrderProductsQueryHandler {
	return GetOrderProductsQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
// Lines whose product was removed from the catalog are not listed.
func (h GetOrderProductsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProductsQuery,
) (Page[ProductView], error) {
	if err := query.Validate(); err != nil {
		return Page[ProductView]{}, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Bytes()).
		Row().Scan(&exists); err != nil {
		return Page[ProductView]{}, err
	}
	if !exists {
		return Page[ProductView]{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := db.Raw(`
		SELECT `+productColumns+`
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ?
		ORDER BY l.created_at, l.id
		LIMIT ? OFFSET ?
	`, query.OrderID().Bytes(), DefaultPageSize, offset(query.Page())).Rows()
	if err != nil {
		return Page[ProductView]{}, err
	}

	products, err := scanProducts(rows)
	if err != nil {
		return Page[ProductView]{}, err
	}

	return newPage(products), nil
}
