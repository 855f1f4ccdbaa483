package categoryrepo

import (
	"context"
	"errors"

	"deliveryapp/internal/core/domain/model/category"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new category to the database.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
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

// Update saves an existing category. Description is selected explicitly so
// clearing it persists.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Select("name", "description", "updated_at").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Category",aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Category",id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all categories.
func (r *GormCategoryRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]*category.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// Delete removes a category from the database.
func (r *GormCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&CategoryDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Category",id.String())
	}

	return nil
}
