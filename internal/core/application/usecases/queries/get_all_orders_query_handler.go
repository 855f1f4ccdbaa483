package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order, newest first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderHeaderSQL + ` ORDER BY o.created_at DESC`,
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
