package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally filtered by a single status.
// Without a filter the query returns every order in the store.
//
// Example:
//
//	query := NewGetOrdersQueryWithStatus(order.Pending)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Found %d pending orders\n", len(orders))
type GetOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an unfiltered query that returns all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryWithStatus creates a query returning only orders in the
// given status.
func NewGetOrdersQueryWithStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status filter and whether one was set.
func (q GetOrdersQuery) StatusFilter() (order.Status, bool) {
	return q.status, q.hasStatus
}
