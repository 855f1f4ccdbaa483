package driverrepo

import (
	"context"
	"errors"

	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
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

// Update saves an existing driver. Columns are selected explicitly so that
// is_available can be written back to false.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Select("name", "phone", "vehicle_type", "is_available", "updated_at").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("DeliveryDriver",aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("DeliveryDriver",id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all drivers.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves drivers currently free to take an order.
func (r *GormDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "is_available = ?", true).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a driver from the database.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&DriverDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("DeliveryDriver",id.String())
	}

	return nil
}

func toDomainSlice(dtos []DriverDTO) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
