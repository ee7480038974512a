package queries

import (
	"context"
	"database/sql"
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
// A missing owner leaves Owner empty except for its ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp                       GetOrderQueryResponse
		id, userID                 uuid.UUID
		total                      decimal.Decimal
		firstName, lastName, email sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.delivery_status,
			o.total,
			o.created_at,
			o.updated_at,
			(SELECT COUNT(*) FROM order_lines l WHERE l.order_id = o.id),
			u.first_name,
			u.last_name,
			u.email
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&userID,
		&resp.Status,
		&total,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.ProductCount,
		&firstName,
		&lastName,
		&email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Owner.ID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Owner.FirstName = firstName.String
	resp.Owner.LastName = lastName.String
	resp.Owner.Email = email.String

	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
