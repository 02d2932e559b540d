// Package commands contains the operations that modify the orders sheet.
// Every command follows the same pattern: validation, writer lock through the unit of
// work, mutation through the order repository, commit.
package commands

import (
	"context"

	"ordersheet/internal/core/ports"
)

// Unit of Work interfaces used by command handlers.
type (
	// TxManager handles the lifecycle of the writer critical section.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages the writer lock for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
