package services

import (
	"context"
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/pkg/errs"
)

// CustomerResolver looks up the customer profile owned by a user account.
// The order access policy uses it to turn the caller's user id into the
// customer id orders are keyed by.
type CustomerResolver interface {
	GetByUserID(ctx context.Context, userID kernel.UUID) (*customer.Customer, error)
}

// OrderAccessPolicy decides whether a caller may see or act on an order.
//
// The rules are uniform across read and write paths:
//   - anonymous callers are rejected outright
//   - admins may access any order
//   - customers may access only orders that belong to their own profile
//
// Resolution of "their own profile" goes through CustomerResolver: the
// token carries a user id, orders carry a customer id, and the customer
// row links the two.
type OrderAccessPolicy struct {
	customers CustomerResolver
}

// NewOrderAccessPolicy creates the policy backed by the given resolver.
func NewOrderAccessPolicy(customers CustomerResolver) (*OrderAccessPolicy, error) {
	if customers == nil {
		return nil, errs.NewValueIsRequiredError("customers")
	}
	return &OrderAccessPolicy{customers: customers}, nil
}

// CanAccessOrder checks whether the caller may see or act on the given order.
func (p *OrderAccessPolicy) CanAccessOrder(ctx context.Context, caller auth.Caller, anOrder *order.Order) error {
	if err := anOrder.Validate(); err != nil {
		return err
	}
	return p.CanAccessCustomerOrders(ctx, caller, anOrder.CustomerID())
}

// CanAccessCustomerOrders checks whether the caller may see the order
// history of the given customer.
func (p *OrderAccessPolicy) CanAccessCustomerOrders(ctx context.Context, caller auth.Caller, customerID kernel.UUID) error {
	if !caller.IsAuthenticated() {
		return errs.NewUnauthorizedError("authentication required")
	}
	if caller.IsAdmin() {
		return nil
	}

	own, err := p.customers.GetByUserID(ctx, caller.UserID())
	if err != nil {
		// A missing profile means the caller is not a customer; anything
		// else is an infrastructure failure and keeps its own kind.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewForbiddenError("caller has no customer profile")
		}
		return err
	}
	if !own.ID().IsEqual(customerID) {
		return errs.NewForbiddenError("order belongs to another customer")
	}
	return nil
}
