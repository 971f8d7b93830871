package order

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order: a product, a quantity, and a unit price.
// Items have no identity outside their owning order; they are persisted and
// fetched only through the Order aggregate and never referenced back to it.
//
// Invariants:
//   - productName is non-empty
//   - quantity is at least 1
//   - unitPrice is a valid non-negative decimal amount
type Item struct {
	// id is the item's identifier, assigned at construction
	id kernel.UUID

	// productName is the ordered product, set at creation
	productName string

	// quantity is the number of units, always >= 1
	quantity int

	// unitPrice is the exact-decimal price per unit
	unitPrice kernel.Price

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a validated order item. Construction fails rather than
// producing a partially-invalid item: an empty product name, a quantity
// below 1, or an invalid price each yield an error, joined when several
// fields are bad at once.
func NewItem(id kernel.UUID, productName string, quantity int, unitPrice kernel.Price) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their identifiers. Equality is
// identity-based, not structural.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductName returns the ordered product's name.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the exact-decimal price per unit.
func (i *Item) UnitPrice() kernel.Price {
	return i.unitPrice
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
