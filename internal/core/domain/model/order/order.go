package order

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer order. It owns its items
// exclusively: items are created, replaced, and persisted only through the
// order, never addressed independently.
//
// Order maintains these invariants:
//   - id, customerName, and createdAt are set at construction and immutable
//   - status is always one of the five defined values
//   - items is never nil; an order with zero items is valid
//   - every item was validated before the order became constructible
//   - status changes only through the defined transition methods
type Order struct {
	// id is the order's identifier
	id kernel.UUID

	// customerName is the ordering customer, non-empty
	customerName string

	// createdAt is the creation instant, UTC, fixed at construction
	createdAt time.Time

	// status is the current lifecycle state
	status Status

	// items are the order's lines, owned exclusively by this order
	items []*Item

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with createdAt set to the
// current UTC instant. Items must already be constructed via NewItem; a nil
// items slice is accepted and becomes an empty order. Construction fails if
// the id is invalid, customerName is empty, or any item is invalid — no
// partially-valid aggregate is ever produced.
func NewOrder(id kernel.UUID, customerName string, items []*Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts an explicit createdAt and status, but applies the same field
// validation so invalid stored data cannot rehydrate into a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	createdAt time.Time,
	status Status,
	items []*Item,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was properly constructed through a factory
// function. Called when aggregates cross the persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers. Equality is
// identity-based: two freshly constructed orders are never equal
// unless they share an id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the ordering customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CreatedAt returns the creation instant in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's lines. The returned slice is a copy; the
// underlying items remain owned by the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// StartProcessing advances the order from Pending to Processing.
// Used by the periodic sweep. Returns *errs.InvalidStateError if the
// order is not Pending.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled. Only Pending orders can be
// cancelled; any other current status yields *errs.InvalidStateError
// carrying the current and requested states.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus sets the order's status to newStatus as an administrative
// override. The target must be a valid status value, but any transition is
// allowed, including out of terminal states. Guarded operations (Cancel,
// StartProcessing) remain the only entry points that enforce the lifecycle
// diagram.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReplaceItems discards the order's current items and takes ownership of the
// given list. Replace-all semantics: there is no per-item add or remove.
func (o *Order) ReplaceItems(items []*Item) error {
	return o.setItems(items)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	validated := make([]*Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		validated = append(validated, item)
	}

	o.items = validated
	return nil
}
