// Package userrepo persists the user aggregate.
package userrepo

import (
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table. Email is unique.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	PhoneNumber  int64     `gorm:"type:bigint;not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	GroupName    string    `gorm:"type:varchar(50);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		PhoneNumber:  u.Phone(),
		Email:        u.Email(),
		GroupName:    u.Group(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.FirstName,
		dto.LastName,
		dto.PhoneNumber,
		dto.Email,
		dto.GroupName,
		dto.PasswordHash,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
