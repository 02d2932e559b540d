package commands

import (
	"context"
)

// UpdateOrderCommandHandler rewrites an order in place under the writer lock.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the rows of the old order number. It returns *errs.ObjectNotFoundError
// without changing anything when the old order number has no rows.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if err := uow.OrderRepository().Update(ctx, cmd.OldOrderNo(), cmd.Order()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
