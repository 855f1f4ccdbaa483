// Package customerrepo persists customer profiles.
package customerrepo

import (
	"time"

	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer profiles.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, userID, dto.Name, dto.Email, dto.Phone,
		dto.Address, dto.CreatedAt, dto.UpdatedAt)
}
