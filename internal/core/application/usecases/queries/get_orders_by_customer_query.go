package queries

import (
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves a customer's order history. Customers
// can only list their own; admins any customer's.
type GetOrdersByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	caller     auth.Caller

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query to list a customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID, caller auth.Caller) (GetOrdersByCustomerQuery, error) {
	query := GetOrdersByCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}
	query.customerID = customerID
	query.caller = caller

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q GetOrdersByCustomerQuery) Caller() auth.Caller {
	return q.caller
}
