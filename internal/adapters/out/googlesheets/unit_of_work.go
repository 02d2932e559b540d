package googlesheets

import (
	"context"
	"time"

	"ordersheet/internal/adapters/out/sheet/orderrepo"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/lock"
)

// UnitOfWorkFactory creates units of work that share one writer lock per process.
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

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{wb: f.wb, ordersSheet: f.ordersSheet, lock: f.lock}
}

// UnitOfWork holds the writer lock between Begin and Commit/Rollback.
// The spreadsheet applies every request immediately, so Rollback only releases the
// lock; writes already sent stay in place.
type UnitOfWork struct {
	wb          *Workbook
	ordersSheet string
	lock        *lock.TimedMutex
	active      bool
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.lock.Acquire(ctx); err != nil {
		return err
	}
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	return uow.release()
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return uow.release()
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewSheetOrderRepository(uow.wb.Table(uow.ordersSheet))
}

func (uow *UnitOfWork) release() error {
	if !uow.active {
		return ports.ErrUnitOfWorkIsNotActive
	}
	uow.active = false
	uow.lock.Release()
	return nil
}
