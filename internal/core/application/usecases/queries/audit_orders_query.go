package queries

import (
	"errors"

	"ordersheet/internal/pkg/guard"
)

var ErrAuditOrdersQueryIsNotConstructed = errors.New(
	"AuditOrdersQuery must be created via NewAuditOrdersQuery constructor",
)

// AuditOrdersQuery inspects the orders sheet for rows that break the grouping
// assumptions. It never modifies data.
type AuditOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewAuditOrdersQuery() AuditOrdersQuery {
	return AuditOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q AuditOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAuditOrdersQueryIsNotConstructed)
}
