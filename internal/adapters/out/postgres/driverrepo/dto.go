// Package driverrepo persists delivery drivers.
package driverrepo

import (
	"time"

	"deliveryapp/internal/core/domain/model/driver"
	"deliveryapp/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting delivery drivers.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	VehicleType int
	IsAvailable bool `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		VehicleType: int(aggregate.VehicleType()),
		IsAvailable: aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone,
		driver.VehicleType(dto.VehicleType), dto.IsAvailable, dto.CreatedAt, dto.UpdatedAt)
}
