package commands

import (
	"time"

	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the projection command handlers return after a
// successful order mutation. It carries identifiers and the snapshot the
// caller just changed; joined names belong to the query side.
type OrderResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	DeliveryDriverID *kernel.UUID
	DeliveryAddress  string
	Status           string
	Items            []OrderItemResponse
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// OrderItemResponse is a single order line in an OrderResponse.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// NewOrderResponse projects an order aggregate into its response shape.
func NewOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:               aggregate.ID(),
		CustomerID:       aggregate.CustomerID(),
		DeliveryDriverID: aggregate.DeliveryDriverID(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		Status:           aggregate.Status().String(),
		Items:            items,
		TotalAmount:      aggregate.TotalAmount(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}
