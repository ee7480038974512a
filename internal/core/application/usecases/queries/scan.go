package queries

import (
	"database/sql"

	"market/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const productColumns = `p.id, p.name, p.sku, p.brand, p.category, p.description, p.unit, p.weight, p.price`

func scanProduct(row rowScanner) (ProductView, error) {
	var (
		view  ProductView
		id    uuid.UUID
		price decimal.Decimal
	)

	if err := row.Scan(
		&id,
		&view.Name,
		&view.SKU,
		&view.Brand,
		&view.Category,
		&view.Description,
		&view.Unit,
		&view.Weight,
		&price,
	); err != nil {
		return ProductView{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductView{}, err
	}
	view.ID = productID

	view.Price, err = kernel.NewMoney(price)
	if err != nil {
		return ProductView{}, err
	}

	return view, nil
}

func scanProducts(rows *sql.Rows) ([]ProductView, error) {
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		view, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
