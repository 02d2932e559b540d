package ports

import (
	"context"
	"errors"
)

// ErrUnitOfWorkIsNotActive is returned by Commit and Rollback without a successful Begin.
var ErrUnitOfWorkIsNotActive = errors.New("unit of work is not active")

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the writer critical section of one command.
//
// Begin acquires the workbook's writer lock, waiting at most the configured timeout;
// on timeout it returns *errs.ResourceIsBusyError and nothing is mutated. Commit and
// Rollback both release the lock. Callers defer Rollback right after a successful
// Begin so the lock is released on every path; Rollback after Commit is a no-op error.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to this unit of work.
	OrderRepository() OrderRepository
}
