package commands_test

import (
	"context"

	"ordersheet/internal/core/application/usecases/commands"
	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, oldOrderNo string, o *order.Order) error {
	args := m.Called(ctx, oldOrderNo, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderNo string) (int, error) {
	args := m.Called(ctx, orderNo)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) FindRowIndices(ctx context.Context, orderNo string) ([]int, error) {
	args := m.Called(ctx, orderNo)
	positions, _ := args.Get(0).([]int)
	return positions, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func items(names ...string) []order.Item {
	list := make([]order.Item, 0, len(names))
	for _, n := range names {
		list = append(list, order.NewItem(n, "1"))
	}
	return list
}
