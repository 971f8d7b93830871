package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItemSpec describes one requested order line. Field-level
// constraints (non-empty product, quantity >= 1, non-negative price) are
// enforced by the domain when the handler constructs the items.
type CreateOrderItemSpec struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Price
}

// CreateOrderCommand represents a request to create a new customer order
// with its item lines.
//
// Example:
//
//	price, _ := kernel.PriceFromString("9.99")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Alice", []CreateOrderItemSpec{
//	    {ProductName: "Widget", Quantity: 2, UnitPrice: price},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	items        []CreateOrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and the customer name is not empty;
// an empty item list is allowed (an empty order is valid).
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	items []CreateOrderItemSpec,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerName(customerName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.items = items
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the ordering customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}
