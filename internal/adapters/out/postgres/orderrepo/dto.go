// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryDriverID *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress  string
	Status           int             `gorm:"index"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	Version          int
	Items            []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the order_items table.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional driver assignment and order lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DeliveryDriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		DeliveryDriverID: driverID,
		DeliveryAddress:  aggregate.DeliveryAddress(),
		Status:           int(aggregate.Status()),
		TotalAmount:      aggregate.TotalAmount(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
		Items:            itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, driver assignment
// and order lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DeliveryDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DeliveryDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, driverID, dto.DeliveryAddress,
		order.Status(dto.Status), items, dto.CreatedAt, dto.UpdatedAt, dto.Version)
}
