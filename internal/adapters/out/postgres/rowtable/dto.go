// Package rowtable stores workbook sheets in a PostgreSQL table, one record per row.
// Every sheet shares the sheet_rows table and is addressed by its name; positions
// follow the spreadsheet convention with the header at position 1.
package rowtable

import (
	"ordersheet/internal/core/domain/model/sheet"

	"github.com/lib/pq"
)

// SheetRowDTO represents one row of one sheet. Positions are kept dense per sheet:
// inserts and deletes shift the rows below them.
type SheetRowDTO struct {
	ID       uint           `gorm:"primaryKey"`
	Sheet    string         `gorm:"type:text;not null;index:idx_sheet_rows_position,priority:1"`
	Position int            `gorm:"not null;index:idx_sheet_rows_position,priority:2"`
	Cells    pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for sheet rows.
func (SheetRowDTO) TableName() string {
	return "sheet_rows"
}

// fromDomain converts a row to its database representation in display form.
func fromDomain(sheetName string, position int, row sheet.Row) SheetRowDTO {
	return SheetRowDTO{
		Sheet:    sheetName,
		Position: position,
		Cells:    pq.StringArray(sheet.EnterRow(row)),
	}
}

// toDomain converts a database DTO back to a row.
func toDomain(dto SheetRowDTO) sheet.Row {
	return sheet.Row(dto.Cells).Clone()
}
