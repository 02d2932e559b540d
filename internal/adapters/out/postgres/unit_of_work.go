// Package postgres provides the GORM-based Unit of Work for the PostgreSQL engine.
//
// Each unit of work is one database transaction. Begin takes a transaction-scoped
// advisory lock keyed by the orders sheet name, so writers from every process that
// shares the database are serialized. Waiting is bounded by lock_timeout; a writer
// that cannot get the lock in time gets *errs.ResourceIsBusyError and its transaction
// is rolled back before anything is written. Commit and Rollback end the transaction,
// which releases the lock.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, "Orders", 10*time.Second)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"ordersheet/internal/adapters/out/postgres/rowtable"
	"ordersheet/internal/adapters/out/sheet/orderrepo"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// lockNotAvailable is the SQLSTATE raised when lock_timeout expires.
const lockNotAvailable = "55P03"

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	ordersSheet string
	timeout     time.Duration
}

// NewGormUnitOfWorkFactory creates a factory for the orders sheet stored in db.
// timeout bounds how long Begin waits for the writer lock.
func NewGormUnitOfWorkFactory(db *gorm.DB, ordersSheet string, timeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:          db,
		ordersSheet: ordersSheet,
		timeout:     timeout,
	}
}

// Create produces a new, inactive UnitOfWork.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		ordersSheet: f.ordersSheet,
		timeout:     f.timeout,
	}
}

// GormUnitOfWork coordinates one database transaction holding the writer lock.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	ordersSheet string
	timeout     time.Duration
}

// Begin opens a transaction and takes the advisory lock of the orders sheet.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageFailedError("begin transaction", tx.Error)
	}

	if err := uow.lock(tx); err != nil {
		tx.Rollback()
		return err
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes and releases the lock.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ports.ErrUnitOfWorkIsNotActive
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewStorageFailedError("commit transaction", err)
	}
	return nil
}

// Rollback discards all changes and releases the lock.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ports.ErrUnitOfWorkIsNotActive
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order repository of the orders sheet. Operations run
// inside the current transaction when one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewSheetOrderRepository(rowtable.NewGormRowTable(db, uow.ordersSheet))
}

func (uow *GormUnitOfWork) lock(tx *gorm.DB) error {
	// SET does not take bind parameters.
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.timeout.Milliseconds())
	if err := tx.Exec(stmt).Error; err != nil {
		return errs.NewStorageFailedError("set lock timeout", err)
	}

	err := tx.Exec("SELECT pg_advisory_xact_lock(?)", LockKey(uow.ordersSheet)).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == lockNotAvailable {
		return errs.NewResourceIsBusyErrorWithCause(uow.ordersSheet, uow.timeout, err)
	}
	return errs.NewStorageFailedError("acquire lock", err)
}

// LockKey maps a sheet name to its advisory lock key.
func LockKey(sheetName string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sheetName))
	return int64(h.Sum64()) //nolint:gosec // wraparound is fine for a lock key
}
