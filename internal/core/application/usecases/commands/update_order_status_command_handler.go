package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies administrative status overrides.
// The write is a compare-and-set against the status the order was loaded
// with, so a concurrent transition on the same order fails this command
// instead of being silently overwritten.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status override
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the override, and persists the new status
// within a single transaction. Returns the updated aggregate, or
// *errs.ObjectNotFoundError if the id is unknown.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	loadedStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.ChangeStatus(ctx, aggregate.ID(), loadedStatus, cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
