package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var ErrAdvancePendingOrdersCommandIsNotConstructed = errors.New(
	"AdvancePendingOrdersCommand must be created via NewAdvancePendingOrdersCommand constructor",
)

// AdvancePendingOrdersCommand triggers the sweep that moves every Pending
// order to Processing. This batch operation is idempotent with respect to
// steady state: a second immediate invocation moves zero orders.
//
// Example:
//
//	cmd := NewAdvancePendingOrdersCommand()
//	handler := NewAdvancePendingOrdersCommandHandler(uowFactory)
//
//	moved, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("sweep failed: %v", err)
//	}
type AdvancePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvancePendingOrdersCommand creates a command to run the pending-order
// sweep. This is a parameterless command.
func NewAdvancePendingOrdersCommand() AdvancePendingOrdersCommand {
	return AdvancePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvancePendingOrdersCommandIsNotConstructed if validation fails.
func (c *AdvancePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePendingOrdersCommandIsNotConstructed)
}
