package memory

import (
	"context"
	"time"

	"ordersheet/internal/adapters/out/sheet/orderrepo"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/lock"
)

// UnitOfWorkFactory creates units of work that share one writer lock per workbook.
type UnitOfWorkFactory struct {
	wb          *Workbook
	ordersSheet string
	lock        *lock.TimedMutex
}

// NewUnitOfWorkFactory creates a factory for the orders sheet of wb.
func NewUnitOfWorkFactory(wb *Workbook, ordersSheet string, timeout time.Duration) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		wb:          wb,
		ordersSheet: ordersSheet,
		lock:        lock.NewTimedMutex(ordersSheet, timeout),
	}
}

// Create returns a new, inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		wb:          f.wb,
		ordersSheet: f.ordersSheet,
		lock:        f.lock,
	}
}

// UnitOfWork holds the writer lock between Begin and Commit/Rollback.
// Rollback restores the orders sheet to its content at Begin.
type UnitOfWork struct {
	wb          *Workbook
	ordersSheet string
	lock        *lock.TimedMutex
	active      bool
	snapshot    []sheet.Row
}

// Begin acquires the writer lock. Calling it on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.lock.Acquire(ctx); err != nil {
		return err
	}

	uow.snapshot = uow.wb.snapshot(uow.ordersSheet)
	uow.active = true
	return nil
}

// Commit keeps the changes and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ports.ErrUnitOfWorkIsNotActive
	}

	uow.finish()
	return nil
}

// Rollback discards the changes and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ports.ErrUnitOfWorkIsNotActive
	}

	uow.wb.restore(uow.ordersSheet, uow.snapshot)
	uow.finish()
	return nil
}

// OrderRepository returns the order repository of the orders sheet.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewSheetOrderRepository(uow.wb.Table(uow.ordersSheet))
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.snapshot = nil
	uow.lock.Release()
}
