package queries

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Results are sorted by order ID for consistent output.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching orders with their line items,
// sorted by order ID. An unfiltered query over an empty store returns an empty
// slice, not nil.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_name,
			status,
			created_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if status, ok := query.StatusFilter(); ok {
		sql += ` WHERE status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var customerName, statusName string
		var createdAt time.Time

		if err = rows.Scan(&id, &customerName, &statusName, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		status, statusErr := order.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, OrderResponse{
			ID:           orderID,
			CustomerName: customerName,
			Status:       status,
			CreatedAt:    createdAt.UTC(),
			Items:        make([]OrderItemResponse, 0),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, itemsErr := loadItems(ctx, h.db, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[i].Items = items
	}

	return orders, nil
}
