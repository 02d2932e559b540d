// Package memory is an in-process storage engine: a workbook of named sheets held in
// memory. It is the default engine for local runs and the reference engine in tests.
//
// Writes consume the leading text marker of each cell the way a spreadsheet does, so
// reads return the display form.
package memory

import (
	"context"
	"sync"

	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/pkg/errs"
)

// Workbook implements ports.Workbook. Each sheet is stored with its header at index 0.
type Workbook struct {
	mu     sync.RWMutex
	sheets map[string][]sheet.Row
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string][]sheet.Row)}
}

// Seed replaces the content of the named sheet. The first row is the header.
func (w *Workbook) Seed(name string, rows ...sheet.Row) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stored := make([]sheet.Row, len(rows))
	for i, r := range rows {
		stored[i] = sheet.EnterRow(r)
	}
	w.sheets[name] = stored
}

// EnsureSheet seeds the named sheet with header unless it already exists.
func (w *Workbook) EnsureSheet(name string, header sheet.Row) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.sheets[name]; !ok {
		w.sheets[name] = []sheet.Row{header.Clone()}
	}
}

// Table returns the row table of the named sheet.
func (w *Workbook) Table(name string) ports.RowTable {
	return &table{wb: w, name: name}
}

// ReadColumn returns one column of the named sheet from row 2 down.
func (w *Workbook) ReadColumn(_ context.Context, sheetName, column string) ([]string, error) {
	idx, err := sheet.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	rows := w.sheets[sheetName]
	if len(rows) < sheet.FirstDataRow {
		return []string{}, nil
	}

	cells := make([]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		cells = append(cells, r.Cell(idx))
	}
	return cells, nil
}

func (w *Workbook) snapshot(name string) []sheet.Row {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rows, ok := w.sheets[name]
	if !ok {
		return nil
	}
	out := make([]sheet.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

func (w *Workbook) restore(name string, rows []sheet.Row) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if rows == nil {
		delete(w.sheets, name)
		return
	}
	w.sheets[name] = rows
}

// table implements ports.RowTable over one sheet of a Workbook.
type table struct {
	wb   *Workbook
	name string
}

func (t *table) Name() string {
	return t.name
}

func (t *table) Rows(_ context.Context) ([]sheet.Row, error) {
	t.wb.mu.RLock()
	defer t.wb.mu.RUnlock()

	all := t.wb.sheets[t.name]
	if len(all) < sheet.FirstDataRow {
		return []sheet.Row{}, nil
	}

	rows := make([]sheet.Row, 0, len(all)-1)
	for _, r := range all[1:] {
		rows = append(rows, r.Clone())
	}
	return rows, nil
}

func (t *table) AppendRows(_ context.Context, rows []sheet.Row) error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	all := t.sheetLocked()
	for _, r := range rows {
		all = append(all, sheet.EnterRow(r))
	}
	t.wb.sheets[t.name] = all
	return nil
}

func (t *table) InsertBlankRows(_ context.Context, position, count int) error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	all := t.sheetLocked()
	if position < sheet.FirstDataRow || position > len(all)+1 {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, len(all)+1)
	}
	if count <= 0 {
		return nil
	}

	idx := position - 1
	blank := make([]sheet.Row, count)
	for i := range blank {
		blank[i] = sheet.Row{}
	}

	out := make([]sheet.Row, 0, len(all)+count)
	out = append(out, all[:idx]...)
	out = append(out, blank...)
	out = append(out, all[idx:]...)
	t.wb.sheets[t.name] = out
	return nil
}

func (t *table) WriteRows(_ context.Context, position int, rows []sheet.Row) error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	all := t.sheetLocked()
	last := position + len(rows) - 1
	if position < sheet.FirstDataRow || last > len(all) {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, len(all)-len(rows)+1)
	}

	for i, r := range rows {
		all[position-1+i] = sheet.EnterRow(r)
	}
	return nil
}

func (t *table) DeleteRow(_ context.Context, position int) error {
	t.wb.mu.Lock()
	defer t.wb.mu.Unlock()

	all := t.sheetLocked()
	if position < sheet.FirstDataRow || position > len(all) {
		return errs.NewValueIsOutOfRangeError("position", position, sheet.FirstDataRow, len(all))
	}

	idx := position - 1
	t.wb.sheets[t.name] = append(all[:idx:idx], all[idx+1:]...)
	return nil
}

// sheetLocked returns the sheet, creating it with a blank header. Callers hold mu.
func (t *table) sheetLocked() []sheet.Row {
	all, ok := t.wb.sheets[t.name]
	if !ok {
		all = []sheet.Row{{}}
		t.wb.sheets[t.name] = all
	}
	return all
}
