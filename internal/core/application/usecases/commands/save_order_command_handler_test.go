package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ordersheet/internal/core/application/usecases/commands"
	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewSaveOrderCommand("105", order.Details{}, items("Book A"))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, cmd.Order()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSaveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewSaveOrderCommandHandler(factory)

	err := h.Handle(context.Background(), commands.SaveOrderCommand{})

	require.ErrorIs(t, err, commands.ErrSaveOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestSaveOrderCommandHandler_Handle_BusyTouchesNothing(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewSaveOrderCommand("105", order.Details{}, items("Book A"))

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errs.NewResourceIsBusyError("Orders", 10*time.Second)).Once(),
	)

	h := commands.NewSaveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrResourceIsBusy)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestSaveOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewSaveOrderCommand("105", order.Details{}, items("Book A"))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("quota")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
