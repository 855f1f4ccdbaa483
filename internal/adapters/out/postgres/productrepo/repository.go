package productrepo

import (
	"context"
	"errors"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/product"
	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves an existing product. Columns are selected explicitly so that
// is_active can be written back to false.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Select("category_id", "name", "description", "price", "image_url", "is_active", "updated_at").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Product",aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Product",id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves products for the given ids in one round trip. Missing
// ids are absent from the result; the caller decides whether that matters.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves all products.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCategory retrieves all products belonging to a category.
func (r *GormProductRepository) GetAllByCategory(ctx context.Context, categoryID kernel.UUID) ([]*product.Product, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "category_id = ?", categoryID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a product from the database.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ProductDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Product",id.String())
	}

	return nil
}

func toDomainSlice(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
