package orderrepo

import (
	"context"
	"errors"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves status, total and timestamps, then synchronises order_lines
// with the lines of the aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"delivery_status": dto.DeliveryStatus,
			"total":           dto.Total,
			"updated_at":      dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := r.syncLines(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) syncLines(db *gorm.DB, dto OrderDTO) error {
	stale := db.Where("order_id = ?", dto.ID)
	if len(dto.Lines) > 0 {
		productIDs := make([]uuid.UUID, 0, len(dto.Lines))
		for _, l := range dto.Lines {
			productIDs = append(productIDs, l.ProductID)
		}
		stale = stale.Where("product_id NOT IN ?", productIDs)
	}

	if err := stale.Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Lines) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Lines).Error
}

// Get retrieves an order with its lines priced from the catalog.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	if err := db.Preload("Lines", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at, id")
	}).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	prices, err := r.linePrices(db, []OrderDTO{dto})
	if err != nil {
		return nil, err
	}

	return toDomain(dto, prices)
}

// Delete removes the order; order_lines rows go with it by cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetEmptyInPreparing returns the oldest orders without lines that are still
// waiting in the warehouse.
func (r *GormOrderRepository) GetEmptyInPreparing(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_status = ?", order.PreparingForDelivery.String()).
		Where("NOT EXISTS (SELECT 1 FROM order_lines WHERE order_lines.order_id = orders.id)").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, nil)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

type productPrice struct {
	ID    uuid.UUID
	Price decimal.Decimal
}

func (r *GormOrderRepository) linePrices(db *gorm.DB, dtos []OrderDTO) (map[uuid.UUID]decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0)
	for _, dto := range dtos {
		for _, l := range dto.Lines {
			ids = append(ids, l.ProductID)
		}
	}

	prices := make(map[uuid.UUID]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	var rows []productPrice
	if err := db.Table("products").Select("id, price").Where("id IN ?", ids).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}
