// Package orderrepo persists the order aggregate in the orders and order_lines tables.
package orderrepo

import (
	"time"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Lines are stored in order_lines and
// deleted together with the order.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryStatus string          `gorm:"type:varchar(30);not null;index"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Lines          []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO links one product to one order. The pair is unique.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_product;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, lineFromDomain(orderID, l))
	}

	return OrderDTO{
		ID:             orderID,
		UserID:         aggregate.UserID().Bytes(),
		DeliveryStatus: aggregate.Status().String(),
		Total:          aggregate.Total().Decimal(),
		Lines:          lines,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func lineFromDomain(orderID uuid.UUID, l *order.Line) OrderLineDTO {
	return OrderLineDTO{
		ID:        l.ID().Bytes(),
		OrderID:   orderID,
		ProductID: l.ProductID().Bytes(),
		CreatedAt: l.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate. prices maps product ids to their current
// catalog price; a product missing from the catalog is restored at zero.
func toDomain(dto OrderDTO, prices map[uuid.UUID]decimal.Decimal) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		l, lineErr := lineToDomain(lineDTO, prices)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	return order.RestoreOrder(id, userID, status, total, lines, dto.CreatedAt, dto.UpdatedAt)
}

func lineToDomain(dto OrderLineDTO, prices map[uuid.UUID]decimal.Decimal) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price := kernel.ZeroMoney()
	if amount, ok := prices[dto.ProductID]; ok {
		if price, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}
	}

	return order.RestoreLine(id, productID, price, dto.CreatedAt)
}
