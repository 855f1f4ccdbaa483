package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryapp/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler fetches a single order from the database.
// The access check runs after the row is loaded so owners and admins see
// the same NotFound for missing ids.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order reads.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	dbRow := h.db.WithContext(ctx).Raw(
		orderHeaderSQL+` WHERE o.id = ?`,
		query.OrderID().Bytes(),
	).Row()

	row, err := scanOrderRow(dbRow)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("Order", query.OrderID())
		}
		return OrderView{}, err
	}

	if err = checkOrderAccess(query.Caller(), row.ownerUserID); err != nil {
		return OrderView{}, err
	}

	if row.view.Items, err = loadOrderItems(ctx, h.db, row.view.ID); err != nil {
		return OrderView{}, err
	}

	return row.view, nil
}
