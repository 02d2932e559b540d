// Package sheet describes the physical row table the order domain is stored in.
//
// A sheet is an ordered list of rows addressed by 1-based positions, the way a
// spreadsheet addresses them. Position 1 holds the header; data starts at position 2.
// The orders sheet has ten fixed columns (A-J), one row per order item.
package sheet
