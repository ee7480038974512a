// Package productrepo reads the product catalog.
package productrepo

import (
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table. Brand, category and the
// physical attributes are descriptive only and are served by read queries.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	SKU         string          `gorm:"column:sku;type:varchar(64);index"`
	Brand       string          `gorm:"type:varchar(255)"`
	Category    string          `gorm:"type:varchar(255)"`
	Description string          `gorm:"type:text"`
	Unit        string          `gorm:"type:varchar(32)"`
	Weight      float64         `gorm:"type:numeric(10,3)"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		SKU:   p.SKU(),
		Price: p.Price().Decimal(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.SKU, price)
}
