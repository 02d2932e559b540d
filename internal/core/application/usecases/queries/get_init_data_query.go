package queries

import (
	"errors"

	"ordersheet/internal/pkg/guard"
)

var ErrGetInitDataQueryIsNotConstructed = errors.New(
	"GetInitDataQuery must be created via NewGetInitDataQuery constructor",
)

// GetInitDataQuery reads the reference lists the order form needs.
type GetInitDataQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInitDataQuery() GetInitDataQuery {
	return GetInitDataQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInitDataQuery) Validate() error {
	return q.guard.Validate(ErrGetInitDataQueryIsNotConstructed)
}

// GetInitDataQueryResponse holds the product and courier names in sheet order.
type GetInitDataQueryResponse struct {
	Products []string
	Couriers []string
}
