package commands

import (
	"errors"

	"ordersheet/internal/pkg/errs"
	"ordersheet/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes every row of one order number.
type DeleteOrderCommand struct {
	orderNo string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates the command. The order number is required.
func NewDeleteOrderCommand(orderNo string) (DeleteOrderCommand, error) {
	if orderNo == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderNo")
	}

	return DeleteOrderCommand{
		orderNo: orderNo,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderNo returns the order number to delete.
func (c DeleteOrderCommand) OrderNo() string {
	return c.orderNo
}
