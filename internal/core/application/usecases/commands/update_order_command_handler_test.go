package commands_test

import (
	"context"
	"testing"

	"ordersheet/internal/core/application/usecases/commands"
	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateOrderCommand("105", "105", order.Details{}, items("a", "b", "c"))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, "105", cmd.Order()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateOrderCommand("999", "999", order.Details{}, items("a"))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, "999", cmd.Order()).Return(errs.NewObjectNotFoundError("orderNo", "999")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewUpdateOrderCommandHandler(new(MockOrderUoWFactory))

	err := h.Handle(context.Background(), commands.UpdateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
