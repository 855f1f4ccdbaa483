package orderrepo

import (
	"context"
	"errors"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/pkg/errs"

	"gorm.io/gorm"
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

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The row version must still
// match the version the aggregate was loaded with; otherwise another writer
// committed first and the caller gets a conflict. On success the stored
// version is incremented.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"delivery_driver_id": dto.DeliveryDriverID,
			"delivery_address":   dto.DeliveryAddress,
			"status":             dto.Status,
			"total_amount":       dto.TotalAmount,
			"updated_at":         dto.UpdatedAt,
			"version":            aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order was modified concurrently")
	}

	// Lines only change while the order is pending, but replacing them
	// wholesale keeps the mapping trivial.
	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Order",id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPendingStatus retrieves all orders still awaiting payment.
func (r *GormOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "status = ?", int(order.Pending)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes an order and its lines from the database.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", id.Bytes()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Order",id.String())
	}

	return nil
}
