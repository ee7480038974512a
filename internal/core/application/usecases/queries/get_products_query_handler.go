package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) (Page[ProductView], error) {
	if err := query.Validate(); err != nil {
		return Page[ProductView]{}, err
	}

	pattern := "%" + likeEscaper.Replace(query.Name()) + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products p
		WHERE p.name ILIKE ?
		ORDER BY p.name, p.id
		LIMIT ? OFFSET ?
	`, pattern, DefaultPageSize, offset(query.Page())).Rows()
	if err != nil {
		return Page[ProductView]{}, err
	}

	products, err := scanProducts(rows)
	if err != nil {
		return Page[ProductView]{}, err
	}

	return newPage(products), nil
}
