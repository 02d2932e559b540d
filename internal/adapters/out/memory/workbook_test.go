package memory_test

import (
	"context"
	"testing"

	"ordersheet/internal/adapters/out/memory"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) (*memory.Workbook, string) {
	t.Helper()
	wb := memory.NewWorkbook()
	wb.Seed("T", sheet.Row{"h"}, sheet.Row{"r2"}, sheet.Row{"r3"}, sheet.Row{"r4"})
	return wb, "T"
}

func cells(t *testing.T, wb *memory.Workbook, name string) []string {
	t.Helper()
	rows, err := wb.Table(name).Rows(context.Background())
	require.NoError(t, err)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cell(0)
	}
	return out
}

func TestTable_RowsExcludeHeader(t *testing.T) {
	wb, name := seeded(t)

	assert.Equal(t, []string{"r2", "r3", "r4"}, cells(t, wb, name))
}

func TestTable_RowsOfMissingSheet(t *testing.T) {
	rows, err := memory.NewWorkbook().Table("missing").Rows(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTable_AppendRows(t *testing.T) {
	wb, name := seeded(t)

	err := wb.Table(name).AppendRows(context.Background(), []sheet.Row{{"'0812"}, {"r6"}})

	require.NoError(t, err)
	if diff := cmp.Diff([]string{"r2", "r3", "r4", "0812", "r6"}, cells(t, wb, name)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_AppendToMissingSheetCreatesHeaderSlot(t *testing.T) {
	wb := memory.NewWorkbook()

	require.NoError(t, wb.Table("new").AppendRows(context.Background(), []sheet.Row{{"a"}}))

	assert.Equal(t, []string{"a"}, cells(t, wb, "new"))
}

func TestTable_InsertBlankRows(t *testing.T) {
	wb, name := seeded(t)
	tbl := wb.Table(name)

	require.NoError(t, tbl.InsertBlankRows(context.Background(), 3, 2))
	assert.Equal(t, []string{"r2", "", "", "r3", "r4"}, cells(t, wb, name))

	require.NoError(t, tbl.InsertBlankRows(context.Background(), 7, 1))
	assert.Equal(t, []string{"r2", "", "", "r3", "r4", ""}, cells(t, wb, name))

	err := tbl.InsertBlankRows(context.Background(), 1, 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	err = tbl.InsertBlankRows(context.Background(), 9, 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestTable_WriteRows(t *testing.T) {
	wb, name := seeded(t)
	tbl := wb.Table(name)

	require.NoError(t, tbl.WriteRows(context.Background(), 3, []sheet.Row{{"x"}, {"'y"}}))
	assert.Equal(t, []string{"r2", "x", "y"}, cells(t, wb, name))

	err := tbl.WriteRows(context.Background(), 4, []sheet.Row{{"x"}, {"y"}})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, []string{"r2", "x", "y"}, cells(t, wb, name))
}

func TestTable_DeleteRow(t *testing.T) {
	wb, name := seeded(t)
	tbl := wb.Table(name)

	require.NoError(t, tbl.DeleteRow(context.Background(), 3))
	assert.Equal(t, []string{"r2", "r4"}, cells(t, wb, name))

	require.ErrorIs(t, tbl.DeleteRow(context.Background(), 1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, tbl.DeleteRow(context.Background(), 4), errs.ErrValueIsOutOfRange)
}

func TestWorkbook_ReadColumn(t *testing.T) {
	wb := memory.NewWorkbook()
	wb.Seed("Products", sheet.Row{"ID", "Name"}, sheet.Row{"1", "Book A"}, sheet.Row{"2"}, sheet.Row{"3", " Book C "})

	got, err := wb.ReadColumn(context.Background(), "Products", "B")

	require.NoError(t, err)
	assert.Equal(t, []string{"Book A", "", " Book C "}, got)

	empty, err := wb.ReadColumn(context.Background(), "Couriers", "A")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = wb.ReadColumn(context.Background(), "Products", "1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestWorkbook_EnsureSheetKeepsExisting(t *testing.T) {
	wb, name := seeded(t)

	wb.EnsureSheet(name, sheet.Row{"other"})
	wb.EnsureSheet("fresh", sheet.OrderHeader())

	assert.Len(t, cells(t, wb, name), 3)
	assert.Empty(t, cells(t, wb, "fresh"))
}
