package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler lists one customer's orders.
// The ownership check resolves the target customer's linked user id first;
// an unknown customer id is NotFound for everyone.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order history.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ownerUserID uuid.UUID
	err := h.db.WithContext(ctx).Raw(
		`SELECT user_id FROM customers WHERE id = ?`,
		query.CustomerID().Bytes(),
	).Row().Scan(&ownerUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("Customer", query.CustomerID())
		}
		return nil, err
	}

	if err = checkOrderAccess(query.Caller(), ownerUserID); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderHeaderSQL+` WHERE o.customer_id = ? ORDER BY o.created_at DESC`,
		query.CustomerID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, row.view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		if views[i].Items, err = loadOrderItems(ctx, h.db, views[i].ID); err != nil {
			return nil, err
		}
	}

	return views, nil
}
