package queries

import (
	"context"
	"database/sql"
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	var (
		resp GetUserQueryResponse
		id   uuid.UUID
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			phone_number,
			email,
			group_name,
			created_at,
			updated_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row().Scan(
		&id,
		&resp.FirstName,
		&resp.LastName,
		&resp.PhoneNumber,
		&resp.Email,
		&resp.Group,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUserQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}
	if err != nil {
		return GetUserQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetUserQueryResponse{}, err
	}

	return resp, nil
}
