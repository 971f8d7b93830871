package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Reads bypass the aggregate and query the tables directly.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its line items.
// Returns *errs.ObjectNotFoundError if no order has the requested ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var id uuid.UUID
	var customerName, statusName string
	var createdAt time.Time

	err := row.Scan(&id, &customerName, &statusName, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := loadItems(ctx, h.db, orderID)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           orderID,
		CustomerName: customerName,
		Status:       status,
		CreatedAt:    createdAt.UTC(),
		Items:        items,
	}, nil
}

// loadItems reads the line items of a single order, sorted by item ID.
func loadItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var productName, unitPrice string
		var quantity int

		if err = rows.Scan(&id, &productName, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.PriceFromString(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, OrderItemResponse{
			ID:          itemID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
