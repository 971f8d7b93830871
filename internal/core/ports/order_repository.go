package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its full item set are always written atomically: inserts and
// updates commit or roll back the whole aggregate together.
type OrderRepository interface {
	// Add persists a new order aggregate, including all of its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with
	// replace-all item semantics: stored items not present on the
	// aggregate are deleted.
	// Returns *errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// ChangeStatus performs a compare-and-set on the order's status row:
	// the write applies only if the stored status still equals from.
	// Returns *errs.ObjectNotFoundError if no order has the given id, and
	// *errs.InvalidStateError (carrying the actual stored status) if the
	// row exists but its status no longer matches, so concurrent
	// transitions on the same order cannot both succeed.
	ChangeStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error

	// Get retrieves an order aggregate with its items by identifier.
	// Returns *errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order with its items, ordered by id ascending
	// for stable listings.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// ordered by id ascending. Used by filtered listings and by the sweep
	// to find Pending orders.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
