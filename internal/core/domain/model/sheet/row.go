package sheet

import (
	"strings"

	"ordersheet/internal/core/domain/model/kernel"
)

const (
	// HeaderRow is the 1-based position of the header row.
	HeaderRow = 1
	// FirstDataRow is the 1-based position of the first data row.
	FirstDataRow = 2
)

// Row is one physical record of a sheet. Cells are display strings.
type Row []string

// Cell returns the cell at the 0-based column index, or "" when the row is shorter.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Padded returns a copy of r widened with empty cells to at least width columns.
func (r Row) Padded(width int) Row {
	out := make(Row, max(width, len(r)))
	copy(out, r)
	return out
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Blank returns a row of width empty cells.
func Blank(width int) Row {
	return make(Row, width)
}

// PositionOf converts a 0-based data index into a 1-based sheet position.
func PositionOf(dataIndex int) int {
	return FirstDataRow + dataIndex
}

// IndexOf converts a 1-based sheet position into a 0-based data index.
func IndexOf(position int) int {
	return position - FirstDataRow
}

// EnterValue returns what a spreadsheet keeps when value is typed into a cell:
// one leading text marker is consumed and the rest is stored verbatim.
// Engines that are not spreadsheets apply it on write so reads return the display form.
func EnterValue(value string) string {
	return strings.TrimPrefix(value, kernel.TextMarker)
}

// EnterRow applies EnterValue to every cell of r.
func EnterRow(r Row) Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = EnterValue(v)
	}
	return out
}
