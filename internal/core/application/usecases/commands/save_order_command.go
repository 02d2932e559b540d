package commands

import (
	"errors"

	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/pkg/guard"
)

var ErrSaveOrderCommandIsNotConstructed = errors.New(
	"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
)

// SaveOrderCommand represents a request to append a new order to the orders sheet.
// The date and phone are converted to text-forced cells when the command is built.
//
// Example:
//
//	cmd, err := NewSaveOrderCommand("105", order.Details{Phone: "66812345678"}, []order.Item{
//	    order.NewItem("Book A", "2"),
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type SaveOrderCommand struct {
	order *order.Order

	guard guard.ConstructorGuard
}

// NewSaveOrderCommand validates the order fields and builds the command.
func NewSaveOrderCommand(orderNo string, details order.Details, items []order.Item) (SaveOrderCommand, error) {
	o, err := order.NewOrder(orderNo, details.ForStorage(), items)
	if err != nil {
		return SaveOrderCommand{}, err
	}

	return SaveOrderCommand{
		order: o,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}

// Order returns the order to append.
func (c SaveOrderCommand) Order() *order.Order {
	return c.order
}
