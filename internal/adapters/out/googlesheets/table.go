package googlesheets

import (
	"context"
	"fmt"

	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/pkg/errs"

	"google.golang.org/api/sheets/v4"
)

// table implements ports.RowTable over one sheet of the spreadsheet.
// Grid indexes are 0-based; positions are 1-based.
type table struct {
	wb   *Workbook
	name string
}

func (t *table) Name() string {
	return t.name
}

func (t *table) Rows(ctx context.Context) ([]sheet.Row, error) {
	return t.wb.read(ctx, fmt.Sprintf("%s!A%d:%s", quote(t.name), sheet.FirstDataRow, lastColumn()))
}

func (t *table) AppendRows(ctx context.Context, rows []sheet.Row) error {
	if len(rows) == 0 {
		return nil
	}

	rng := fmt.Sprintf("%s!A%d:%s", quote(t.name), sheet.HeaderRow, lastColumn())
	_, err := t.wb.srv.Spreadsheets.Values.Append(t.wb.spreadsheetID, rng, valueRange(rows)).
		ValueInputOption(userEntered).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errs.NewStorageFailedError("append rows", err)
	}
	return nil
}

func (t *table) InsertBlankRows(ctx context.Context, position, count int) error {
	if position < sheet.FirstDataRow {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, "end")
	}
	if count <= 0 {
		return nil
	}

	return t.wb.dimension(ctx, t.name, func(r *sheets.DimensionRange) *sheets.Request {
		return &sheets.Request{InsertDimension: &sheets.InsertDimensionRequest{Range: r}}
	}, position-1, position-1+count)
}

func (t *table) WriteRows(ctx context.Context, position int, rows []sheet.Row) error {
	if position < sheet.FirstDataRow {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, "end")
	}

	rng := fmt.Sprintf("%s!A%d:%s%d", quote(t.name), position, lastColumn(), position+len(rows)-1)
	return t.wb.write(ctx, rng, rows)
}

func (t *table) DeleteRow(ctx context.Context, position int) error {
	if position < sheet.FirstDataRow {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, "end")
	}

	return t.wb.dimension(ctx, t.name, func(r *sheets.DimensionRange) *sheets.Request {
		return &sheets.Request{DeleteDimension: &sheets.DeleteDimensionRequest{Range: r}}
	}, position-1, position)
}

func lastColumn() string {
	return sheet.ColumnLetter(sheet.OrderWidth - 1)
}
