// Package referencerepo reads the product and courier reference lists from their sheets.
package referencerepo

import (
	"context"
	"strings"

	"ordersheet/internal/core/ports"
)

// Config names the sheets and columns holding the reference lists.
type Config struct {
	ProductsSheet  string
	ProductsColumn string
	CouriersSheet  string
	CouriersColumn string
}

// SheetReferenceRepository implements ports.ReferenceRepository.
type SheetReferenceRepository struct {
	workbook ports.Workbook
	config   Config
}

// NewSheetReferenceRepository creates a reference repository over workbook.
func NewSheetReferenceRepository(workbook ports.Workbook, config Config) *SheetReferenceRepository {
	return &SheetReferenceRepository{
		workbook: workbook,
		config:   config,
	}
}

// Products returns the product names.
func (r *SheetReferenceRepository) Products(ctx context.Context) ([]string, error) {
	return r.ListColumn(ctx, r.config.ProductsSheet, r.config.ProductsColumn)
}

// Couriers returns the courier names.
func (r *SheetReferenceRepository) Couriers(ctx context.Context) ([]string, error) {
	return r.ListColumn(ctx, r.config.CouriersSheet, r.config.CouriersColumn)
}

// ListColumn returns the trimmed, non-empty cells of one column from row 2 down,
// keeping row order.
func (r *SheetReferenceRepository) ListColumn(ctx context.Context, sheetName, column string) ([]string, error) {
	cells, err := r.workbook.ReadColumn(ctx, sheetName, column)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(cells))
	for _, c := range cells {
		if v := strings.TrimSpace(c); v != "" {
			values = append(values, v)
		}
	}
	return values, nil
}
