package rowtable

import (
	"context"

	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRowTable implements ports.RowTable over the rows of one sheet.
// The table uses whatever connection it was built with, so a table created from a
// transaction takes part in that transaction.
type GormRowTable struct {
	db   *gorm.DB
	name string
}

// NewGormRowTable creates a row table for the named sheet.
func NewGormRowTable(db *gorm.DB, name string) *GormRowTable {
	return &GormRowTable{db: db, name: name}
}

func (t *GormRowTable) Name() string {
	return t.name
}

// Rows returns the data rows ordered by position.
func (t *GormRowTable) Rows(ctx context.Context) ([]sheet.Row, error) {
	var dtos []SheetRowDTO
	err := t.scope(ctx).
		Where("position >= ?", sheet.FirstDataRow).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageFailedError("read rows", err)
	}

	rows := make([]sheet.Row, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, toDomain(dto))
	}
	return rows, nil
}

// AppendRows inserts rows after the last position in one statement.
func (t *GormRowTable) AppendRows(ctx context.Context, rows []sheet.Row) error {
	if len(rows) == 0 {
		return nil
	}

	last, err := t.lastPosition(ctx)
	if err != nil {
		return err
	}

	dtos := make([]SheetRowDTO, 0, len(rows))
	for i, r := range rows {
		dtos = append(dtos, fromDomain(t.name, last+1+i, r))
	}

	if err = t.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewStorageFailedError("append rows", err)
	}
	return nil
}

// InsertBlankRows shifts the rows at or after position down by count and fills the gap.
func (t *GormRowTable) InsertBlankRows(ctx context.Context, position, count int) error {
	last, err := t.lastPosition(ctx)
	if err != nil {
		return err
	}
	if position < sheet.FirstDataRow || position > last+1 {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, last+1)
	}
	if count <= 0 {
		return nil
	}

	err = t.scope(ctx).
		Where("position >= ?", position).
		Update("position", gorm.Expr("position + ?", count)).Error
	if err != nil {
		return errs.NewStorageFailedError("insert rows", err)
	}

	dtos := make([]SheetRowDTO, 0, count)
	for i := 0; i < count; i++ {
		dtos = append(dtos, fromDomain(t.name, position+i, sheet.Row{}))
	}
	if err = t.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewStorageFailedError("insert rows", err)
	}
	return nil
}

// WriteRows overwrites the cells of consecutive existing rows.
func (t *GormRowTable) WriteRows(ctx context.Context, position int, rows []sheet.Row) error {
	last, err := t.lastPosition(ctx)
	if err != nil {
		return err
	}
	if position < sheet.FirstDataRow || position+len(rows)-1 > last {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, last-len(rows)+1)
	}

	for i, r := range rows {
		dto := fromDomain(t.name, position+i, r)
		err = t.scope(ctx).
			Where("position = ?", dto.Position).
			Update("cells", dto.Cells).Error
		if err != nil {
			return errs.NewStorageFailedError("write rows", err)
		}
	}
	return nil
}

// DeleteRow removes the row at position and closes the gap.
func (t *GormRowTable) DeleteRow(ctx context.Context, position int) error {
	last, err := t.lastPosition(ctx)
	if err != nil {
		return err
	}
	if position < sheet.FirstDataRow || position > last {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, last)
	}

	err = t.scope(ctx).Where("position = ?", position).Delete(&SheetRowDTO{}).Error
	if err != nil {
		return errs.NewStorageFailedError("delete row", err)
	}

	err = t.scope(ctx).
		Where("position > ?", position).
		Update("position", gorm.Expr("position - 1")).Error
	if err != nil {
		return errs.NewStorageFailedError("delete row", err)
	}
	return nil
}

// lastPosition returns the highest used position, treating a sheet without rows as
// having only its header.
func (t *GormRowTable) lastPosition(ctx context.Context) (int, error) {
	var last int
	err := t.scope(ctx).
		Select("COALESCE(MAX(position), ?)", sheet.HeaderRow).
		Scan(&last).Error
	if err != nil {
		return 0, errs.NewStorageFailedError("read rows", err)
	}
	if last < sheet.HeaderRow {
		last = sheet.HeaderRow
	}
	return last, nil
}

func (t *GormRowTable) scope(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Model(&SheetRowDTO{}).Where("sheet = ?", t.name)
}
