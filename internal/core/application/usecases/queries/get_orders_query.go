// Package queries contains read-only operations. Queries never take the writer lock
// and may observe the sheet before or after a concurrent write.
package queries

import (
	"errors"

	"ordersheet/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists every order, newest first.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates the parameterless order listing query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ItemView is one item of an order as shown to the operator.
type ItemView struct {
	Name string
	Qty  string
}

// OrderView is one order in display form.
type OrderView struct {
	OrderNo       string
	Date          string
	SetName       string
	PageNo        string
	RecipientName string
	Address       string
	Phone         string
	Courier       string
	Items         []ItemView
}
