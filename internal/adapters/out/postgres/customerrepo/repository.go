package customerrepo

import (
	"context"
	"errors"

	"deliveryapp/internal/adapters/out/postgres/pgerr"
	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer profile. A second profile for the same user
// violates the unique index on user_id and surfaces as a conflict.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer profile.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Customer",aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer profile by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Customer",id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the customer profile owned by a user account.
func (r *GormCustomerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*customer.Customer, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Customer",userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all customer profiles.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// Delete removes a customer profile from the database.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&CustomerDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Customer",id.String())
	}

	return nil
}
