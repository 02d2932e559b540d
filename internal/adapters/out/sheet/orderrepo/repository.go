// Package orderrepo implements the order repository on top of any ports.RowTable.
//
// The repository owns the row-level semantics of the orders sheet: appends go to the
// end as one block, lookups compare order numbers as exact strings, deletes run from
// the highest position down so earlier positions stay valid, and updates reinsert the
// new rows where the topmost old row used to be.
package orderrepo

import (
	"context"

	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/domain/services"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/errs"
)

// SheetOrderRepository implements ports.OrderRepository and ports.OrderReader.
type SheetOrderRepository struct {
	table ports.RowTable
	codec services.RowCodec
}

// NewSheetOrderRepository creates a repository over the orders table.
func NewSheetOrderRepository(table ports.RowTable) *SheetOrderRepository {
	return &SheetOrderRepository{
		table: table,
		codec: services.NewRowCodec(),
	}
}

// Add appends the rows of a new order in one batch. Existing rows are not touched.
func (r *SheetOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	rows, err := r.codec.Encode(aggregate)
	if err != nil {
		return err
	}

	return r.table.AppendRows(ctx, rows)
}

// FindRowIndices scans all data rows and returns the positions of orderNo, highest first.
func (r *SheetOrderRepository) FindRowIndices(ctx context.Context, orderNo string) ([]int, error) {
	rows, err := r.table.Rows(ctx)
	if err != nil {
		return nil, err
	}

	var positions []int
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Cell(sheet.ColumnOrderNo) == orderNo {
			positions = append(positions, sheet.PositionOf(i))
		}
	}
	return positions, nil
}

// Delete removes every row of orderNo, highest position first.
func (r *SheetOrderRepository) Delete(ctx context.Context, orderNo string) (int, error) {
	positions, err := r.FindRowIndices(ctx, orderNo)
	if err != nil {
		return 0, err
	}
	if len(positions) == 0 {
		return 0, errs.NewObjectNotFoundError("orderNo", orderNo)
	}

	if err = r.deleteRows(ctx, positions); err != nil {
		return 0, err
	}
	return len(positions), nil
}

// Update deletes the rows of oldOrderNo and writes the rows of aggregate as one block
// at the smallest old position. The table size changes by the item-count delta.
func (r *SheetOrderRepository) Update(ctx context.Context, oldOrderNo string, aggregate *order.Order) error {
	rows, err := r.codec.Encode(aggregate)
	if err != nil {
		return err
	}

	positions, err := r.FindRowIndices(ctx, oldOrderNo)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return errs.NewObjectNotFoundError("orderNo", oldOrderNo)
	}

	// Deleting rows below insertAt never shifts it.
	insertAt := positions[len(positions)-1]
	if err = r.deleteRows(ctx, positions); err != nil {
		return err
	}

	if err = r.table.InsertBlankRows(ctx, insertAt, len(rows)); err != nil {
		return err
	}
	return r.table.WriteRows(ctx, insertAt, rows)
}

// List decodes the whole table and returns orders newest first.
func (r *SheetOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	rows, err := r.table.Rows(ctx)
	if err != nil {
		return nil, err
	}

	return r.codec.Decode(rows).Newest(), nil
}

// deleteRows expects positions in descending order.
func (r *SheetOrderRepository) deleteRows(ctx context.Context, positions []int) error {
	for _, p := range positions {
		if err := r.table.DeleteRow(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
