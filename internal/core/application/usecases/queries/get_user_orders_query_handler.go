package queries

import (
	"context"

	"market/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle returns an empty page for unknown users.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) (Page[OrderSummary], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderSummary]{}, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`
		SELECT
			id,
			delivery_status,
			total,
			created_at,
			updated_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, query.UserID().Bytes(), DefaultPageSize, offset(query.Page())).Rows()
	if err != nil {
		return Page[OrderSummary]{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var (
			summary OrderSummary
			id      uuid.UUID
			total   decimal.Decimal
		)

		if err = rows.Scan(&id, &summary.Status, &total, &summary.CreatedAt, &summary.UpdatedAt); err != nil {
			return Page[OrderSummary]{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return Page[OrderSummary]{}, err
		}

		if summary.Total, err = kernel.NewMoney(total); err != nil {
			return Page[OrderSummary]{}, err
		}

		orders = append(orders, summary)
		ids = append(ids, id.String())
	}

	if err = rows.Err(); err != nil {
		return Page[OrderSummary]{}, err
	}

	if len(orders) == 0 {
		return newPage(orders), nil
	}

	counts, err := h.lineCounts(db, ids)
	if err != nil {
		return Page[OrderSummary]{}, err
	}

	for i := range orders {
		orders[i].ProductCount = counts[orders[i].ID.String()]
	}

	return newPage(orders), nil
}

func (h GetUserOrdersQueryHandler) lineCounts(db *gorm.DB, orderIDs []string) (map[string]int, error) {
	rows, err := db.Raw(`
		SELECT order_id, COUNT(*)
		FROM order_lines
		WHERE order_id = ANY(?::uuid[])
		GROUP BY order_id
	`, pq.Array(orderIDs)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int, len(orderIDs))
	for rows.Next() {
		var (
			orderID uuid.UUID
			count   int
		)
		if err = rows.Scan(&orderID, &count); err != nil {
			return nil, err
		}
		counts[orderID.String()] = count
	}

	return counts, rows.Err()
}
