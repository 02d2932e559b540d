package rowtable

import (
	"context"
	"errors"

	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkbook implements ports.Workbook over the sheet_rows table.
type GormWorkbook struct {
	db *gorm.DB
}

// NewGormWorkbook creates a workbook on db.
func NewGormWorkbook(db *gorm.DB) *GormWorkbook {
	return &GormWorkbook{db: db}
}

// Migrate creates or updates the sheet_rows table.
func (w *GormWorkbook) Migrate(ctx context.Context) error {
	return w.db.WithContext(ctx).AutoMigrate(&SheetRowDTO{})
}

// EnsureSheet writes header at position 1 unless the sheet already has a header.
func (w *GormWorkbook) EnsureSheet(ctx context.Context, name string, header sheet.Row) error {
	var dto SheetRowDTO
	err := w.db.WithContext(ctx).
		Where("sheet = ? AND position = ?", name, sheet.HeaderRow).
		First(&dto).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewStorageFailedError("ensure sheet", err)
	}

	dto = fromDomain(name, sheet.HeaderRow, header)
	if err = w.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageFailedError("ensure sheet", err)
	}
	return nil
}

// Table returns the row table of the named sheet outside any transaction.
func (w *GormWorkbook) Table(name string) ports.RowTable {
	return NewGormRowTable(w.db, name)
}

// ReadColumn returns one column of the named sheet from row 2 down.
func (w *GormWorkbook) ReadColumn(ctx context.Context, sheetName, column string) ([]string, error) {
	idx, err := sheet.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	rows, err := NewGormRowTable(w.db, sheetName).Rows(ctx)
	if err != nil {
		return nil, err
	}

	cells := make([]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cell(idx))
	}
	return cells, nil
}
