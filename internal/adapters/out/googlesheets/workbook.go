// Package googlesheets is the storage engine backed by a real Google spreadsheet.
//
// Writes use the USER_ENTERED input option so the spreadsheet consumes the leading
// text marker and keeps the value as text. Reads use FORMATTED_VALUE so callers see
// the display form. Row inserts and deletes are dimension requests on the sheet grid.
package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/errs"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	userEntered    = "USER_ENTERED"
	formattedValue = "FORMATTED_VALUE"
	dimensionRows  = "ROWS"
)

// Workbook implements ports.Workbook over one spreadsheet.
type Workbook struct {
	srv           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

// NewWorkbook creates a workbook for spreadsheetID using srv.
func NewWorkbook(srv *sheets.Service, spreadsheetID string) *Workbook {
	return &Workbook{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}
}

// NewService creates a Sheets API client authenticated with a service account key file.
func NewService(ctx context.Context, credentialsFile string, opts ...option.ClientOption) (*sheets.Service, error) {
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.NewStorageFailedError("create sheets client", err)
	}
	return srv, nil
}

// Table returns the row table of the named sheet.
func (w *Workbook) Table(name string) ports.RowTable {
	return &table{wb: w, name: name}
}

// ReadColumn returns one column of the named sheet from row 2 down.
func (w *Workbook) ReadColumn(ctx context.Context, sheetName, column string) ([]string, error) {
	if _, err := sheet.ColumnIndex(column); err != nil {
		return nil, err
	}

	rng := fmt.Sprintf("%s!%s%d:%s", quote(sheetName), column, sheet.FirstDataRow, column)
	values, err := w.read(ctx, rng)
	if err != nil {
		return nil, err
	}

	cells := make([]string, 0, len(values))
	for _, r := range values {
		cells = append(cells, r.Cell(0))
	}
	return cells, nil
}

// EnsureSheet adds the named sheet with header when the spreadsheet does not have it.
func (w *Workbook) EnsureSheet(ctx context.Context, name string, header sheet.Row) error {
	_, err := w.sheetID(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{Requests: []*sheets.Request{{
		AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: name}},
	}}}
	resp, err := w.srv.Spreadsheets.BatchUpdate(w.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return errs.NewStorageFailedError("add sheet", err)
	}
	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil {
		w.mu.Lock()
		w.sheetIDs[name] = resp.Replies[0].AddSheet.Properties.SheetId
		w.mu.Unlock()
	}

	rng := fmt.Sprintf("%s!A%d", quote(name), sheet.HeaderRow)
	return w.write(ctx, rng, []sheet.Row{header})
}

func (w *Workbook) read(ctx context.Context, rng string) ([]sheet.Row, error) {
	resp, err := w.srv.Spreadsheets.Values.Get(w.spreadsheetID, rng).
		ValueRenderOption(formattedValue).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errs.NewStorageFailedError("read range", err)
	}

	rows := make([]sheet.Row, 0, len(resp.Values))
	for _, values := range resp.Values {
		r := make(sheet.Row, len(values))
		for i, v := range values {
			r[i] = fmt.Sprint(v)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func (w *Workbook) write(ctx context.Context, rng string, rows []sheet.Row) error {
	_, err := w.srv.Spreadsheets.Values.Update(w.spreadsheetID, rng, valueRange(rows)).
		ValueInputOption(userEntered).
		Context(ctx).
		Do()
	if err != nil {
		return errs.NewStorageFailedError("write range", err)
	}
	return nil
}

func (w *Workbook) dimension(ctx context.Context, name string, req func(*sheets.DimensionRange) *sheets.Request, start, end int) error {
	id, err := w.sheetID(ctx, name)
	if err != nil {
		return err
	}

	rng := &sheets.DimensionRange{
		SheetId:    id,
		Dimension:  dimensionRows,
		StartIndex: int64(start),
		EndIndex:   int64(end),
		// Zero is a valid sheet id and start index.
		ForceSendFields: []string{"SheetId", "StartIndex"},
	}
	batch := &sheets.BatchUpdateSpreadsheetRequest{Requests: []*sheets.Request{req(rng)}}
	if _, err = w.srv.Spreadsheets.BatchUpdate(w.spreadsheetID, batch).Context(ctx).Do(); err != nil {
		return errs.NewStorageFailedError("update rows", err)
	}
	return nil
}

// sheetID resolves the grid id of the named sheet, caching the result.
func (w *Workbook) sheetID(ctx context.Context, name string) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if id, ok := w.sheetIDs[name]; ok {
		return id, nil
	}

	resp, err := w.srv.Spreadsheets.Get(w.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, errs.NewStorageFailedError("read spreadsheet", err)
	}

	for _, s := range resp.Sheets {
		if s.Properties != nil {
			w.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}
	if id, ok := w.sheetIDs[name]; ok {
		return id, nil
	}
	return 0, errs.NewObjectNotFoundError("sheet", name)
}

func valueRange(rows []sheet.Row) *sheets.ValueRange {
	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		cells := make([]interface{}, len(r))
		for i, c := range r {
			cells[i] = c
		}
		values = append(values, cells)
	}
	return &sheets.ValueRange{Values: values}
}

// quote renders a sheet name for A1 notation.
func quote(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
