package queries

import (
	"context"

	"ordersheet/internal/core/domain/services"
	"ordersheet/internal/core/ports"
)

// AuditOrdersQueryHandler runs the integrity auditor over the raw orders table.
type AuditOrdersQueryHandler struct {
	table   ports.RowTable
	auditor services.IntegrityAuditor
}

func NewAuditOrdersQueryHandler(table ports.RowTable) AuditOrdersQueryHandler {
	return AuditOrdersQueryHandler{
		table:   table,
		auditor: services.NewIntegrityAuditor(),
	}
}

// Handle returns the anomalies found, in row order. An empty result means the sheet is clean.
func (h AuditOrdersQueryHandler) Handle(ctx context.Context, query AuditOrdersQuery) ([]services.Anomaly, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.table.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return h.auditor.Audit(rows), nil
}
