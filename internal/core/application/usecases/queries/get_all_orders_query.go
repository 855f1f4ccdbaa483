package queries

import (
	"errors"

	"deliveryapp/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system. The transport
// restricts this to admins before the query runs.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
