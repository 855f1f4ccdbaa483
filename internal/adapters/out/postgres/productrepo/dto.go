// Package productrepo persists catalog products.
package productrepo

import (
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		CategoryID:  aggregate.CategoryID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		ImageURL:    aggregate.ImageURL(),
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, categoryID, dto.Name, dto.Description,
		dto.Price, dto.ImageURL, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}
