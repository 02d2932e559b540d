package commands

import (
	"context"
)

// SaveOrderCommandHandler appends the rows of a new order under the writer lock.
type SaveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSaveOrderCommandHandler creates a handler for order creation.
func NewSaveOrderCommandHandler(uowFactory OrderUoWFactory) SaveOrderCommandHandler {
	return SaveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the order. Existing rows are never touched; an order number that
// already exists is not checked.
func (h *SaveOrderCommandHandler) Handle(ctx context.Context, cmd SaveOrderCommand) error {
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

	if err := uow.OrderRepository().Add(ctx, cmd.Order()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
