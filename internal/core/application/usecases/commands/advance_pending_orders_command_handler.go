package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// AdvancePendingOrdersCommandHandler runs the periodic sweep: every order
// currently in Pending status is advanced to Processing within a single
// transaction, and the count of orders actually moved is returned.
//
// Each row is written with a compare-and-set on the Pending status, so a
// sweep running concurrently with another sweep skips rows the other one
// already moved instead of double-counting them. The status filter on the
// scan makes repeat invocations return zero once steady state is reached.
type AdvancePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvancePendingOrdersCommandHandler creates a handler for the sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvancePendingOrdersCommandHandler(uowFactory OrderUoWFactory) AdvancePendingOrdersCommandHandler {
	return AdvancePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns the number of orders moved
// from Pending to Processing by this invocation.
func (h *AdvancePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvancePendingOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	pending, err := orderRepo.GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, aggregate := range pending {
		if err = aggregate.StartProcessing(); err != nil {
			return 0, err
		}

		err = orderRepo.ChangeStatus(ctx, aggregate.ID(), order.Pending, order.Processing)
		if errors.Is(err, errs.ErrInvalidState) {
			// Already moved by a concurrent sweep; not counted here.
			continue
		}
		if err != nil {
			return 0, err
		}

		moved++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return moved, nil
}
