// Package kernel provides the cell-level primitives shared by the order domain.
//
// The package includes:
//   - TextMarker: the apostrophe convention that keeps a cell verbatim as text
//   - FormatDate: ISO date to text-forced DD/MM/YYYY
//   - FormatPhone: phone normalization to a text-forced local number
//
// All functions are pure and safe for concurrent use.
package kernel
