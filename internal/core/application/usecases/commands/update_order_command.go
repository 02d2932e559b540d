package commands

import (
	"errors"

	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/pkg/errs"
	"ordersheet/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces every row of OldOrderNo with the rows of a new order.
// The new order may carry a different order number.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	oldOrderNo string
	order      *order.Order

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates both the old order number and the new order.
// All validation failures are joined into one error.
func NewUpdateOrderCommand(
	oldOrderNo string,
	orderNo string,
	details order.Details,
	items []order.Item,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOldOrderNo(oldOrderNo),
		cmd.setOrder(orderNo, details, items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OldOrderNo returns the order number whose rows are replaced.
func (c UpdateOrderCommand) OldOrderNo() string {
	return c.oldOrderNo
}

// Order returns the replacement order.
func (c UpdateOrderCommand) Order() *order.Order {
	return c.order
}

func (c *UpdateOrderCommand) setOldOrderNo(oldOrderNo string) error {
	if oldOrderNo == "" {
		return errs.NewValueIsRequiredError("oldOrderNo")
	}

	c.oldOrderNo = oldOrderNo
	return nil
}

func (c *UpdateOrderCommand) setOrder(orderNo string, details order.Details, items []order.Item) error {
	o, err := order.NewOrder(orderNo, details.ForStorage(), items)
	if err != nil {
		return err
	}

	c.order = o
	return nil
}
