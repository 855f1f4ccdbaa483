// Package categoryrepo persists product categories.
package categoryrepo

import (
	"time"

	"deliveryapp/internal/core/domain/model/category"
	"deliveryapp/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(aggregate *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return category.RestoreCategory(id, dto.Name, dto.Description, dto.CreatedAt, dto.UpdatedAt)
}
