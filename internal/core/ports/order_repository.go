package ports

import (
	"context"

	"ordersheet/internal/core/domain/model/order"
)

// OrderRepository is the only mutation surface of the orders sheet.
// Every method must run inside a UnitOfWork that holds the writer lock.
type OrderRepository interface {
	// Add appends the rows of a new order as one contiguous block at the end.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces all rows of oldOrderNo with the rows of aggregate, placed at the
	// position of the topmost old row. Returns *errs.ObjectNotFoundError without
	// mutating anything when oldOrderNo has no rows.
	Update(ctx context.Context, oldOrderNo string, aggregate *order.Order) error

	// Delete removes every row of orderNo and returns how many were removed.
	// Returns *errs.ObjectNotFoundError when orderNo has no rows.
	Delete(ctx context.Context, orderNo string) (int, error)

	// FindRowIndices returns the 1-based positions of the rows of orderNo,
	// highest first, so they can be deleted in the returned order.
	FindRowIndices(ctx context.Context, orderNo string) ([]int, error)
}

// OrderReader lists orders without taking the writer lock. Results may reflect a
// state before or after a concurrent write.
type OrderReader interface {
	// List returns the orders newest first (reverse first-seen order).
	List(ctx context.Context) ([]*order.Order, error)
}

// ReferenceRepository reads the product and courier reference lists.
type ReferenceRepository interface {
	Products(ctx context.Context) ([]string, error)
	Couriers(ctx context.Context) ([]string, error)
}
