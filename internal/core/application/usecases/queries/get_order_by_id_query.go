package queries

import (
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves one order with its items and joined names.
// Customers can only fetch their own orders; admins any.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  auth.Caller

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to fetch a single order.
func NewGetOrderByIDQuery(orderID kernel.UUID, caller auth.Caller) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}
	query.orderID = orderID
	query.caller = caller

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderByIDQuery) Caller() auth.Caller {
	return q.caller
}
