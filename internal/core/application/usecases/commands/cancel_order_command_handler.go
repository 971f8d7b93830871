package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels Pending orders. The domain guard rejects
// non-Pending orders, and the store-level compare-and-set (status must still
// be Pending at write time) guarantees that of two concurrent cancel calls
// only one succeeds; the other observes *errs.InvalidStateError.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the Pending-only cancellation guard, and
// persists the transition within a single transaction.
// Fails with *errs.ObjectNotFoundError for an unknown id and
// *errs.InvalidStateError when the order is not Pending.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.ChangeStatus(ctx, aggregate.ID(), loadedStatus, order.Cancelled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
