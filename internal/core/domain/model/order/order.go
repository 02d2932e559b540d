package order

import (
	"errors"
	"slices"

	"ordersheet/internal/pkg/errs"
	"ordersheet/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderNoIsRequired is returned for an empty order number.
	ErrOrderNoIsRequired = errs.NewValueIsRequiredError("orderNo")
	// ErrItemsAreRequired is returned for an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is a customer order with one or more items.
//
// Order follows these invariants:
//   - Number is non-empty and compared as an exact string
//   - Items is never empty
//   - Can only be created through NewOrder
type Order struct {
	number  string
	details Details
	items   []Item
	guard   guard.ConstructorGuard
}

// NewOrder creates an Order. All validation failures are joined into one error.
//
// Example:
//
//	o, err := order.NewOrder("105", order.Details{RecipientName: "Somchai"}, []order.Item{
//	    order.NewItem("Book A", "2"),
//	})
func NewOrder(number string, details Details, items []Item) (*Order, error) {
	o := &Order{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Number returns the order number.
func (o *Order) Number() string {
	return o.number
}

// Details returns the scalar fields of the order.
func (o *Order) Details() Details {
	return o.details
}

// Items returns a copy of the items in their stored order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// ItemCount returns the number of items, which is also the number of rows the order occupies.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// AddItem appends an item after the existing ones.
func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrOrderNoIsRequired
	}
	o.number = number
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = slices.Clone(items)
	return nil
}
