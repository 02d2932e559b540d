// Package ports defines the contracts between the order domain and its storage engines.
// Storage engines implement RowTable and Workbook; the sheet-backed repositories are
// written once against these primitives and shared by every engine.
package ports

import (
	"context"

	"ordersheet/internal/core/domain/model/sheet"
)

// RowTable is one sheet of a workbook: an ordered list of rows addressed by 1-based
// positions, header at position 1 and data from position 2.
//
// Implementations report engine failures as *errs.StorageFailedError and invalid
// positions as *errs.ValueIsOutOfRangeError. RowTable does no locking; writers hold
// the unit of work lock.
type RowTable interface {
	// Name returns the sheet name.
	Name() string

	// Rows returns all data rows in storage order, in display form.
	Rows(ctx context.Context) ([]sheet.Row, error)

	// AppendRows adds rows as one contiguous block after the last row.
	AppendRows(ctx context.Context, rows []sheet.Row) error

	// InsertBlankRows inserts count empty rows so that the first one lands at position.
	// Rows previously at or after position move down by count.
	InsertBlankRows(ctx context.Context, position, count int) error

	// WriteRows overwrites the cells of len(rows) consecutive rows starting at position.
	WriteRows(ctx context.Context, position int, rows []sheet.Row) error

	// DeleteRow removes the row at position; rows after it move up by one.
	DeleteRow(ctx context.Context, position int) error
}

// Workbook gives access to the named sheets of one storage engine.
type Workbook interface {
	// Table returns the row table of the named sheet.
	Table(name string) RowTable

	// ReadColumn returns the cells of one A1 column from row 2 to the last used row,
	// in row order and in display form.
	ReadColumn(ctx context.Context, sheetName, column string) ([]string, error)
}
