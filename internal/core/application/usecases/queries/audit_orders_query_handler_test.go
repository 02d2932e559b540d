package queries_test

import (
	"context"
	"testing"

	"ordersheet/internal/adapters/out/memory"
	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditOrdersQueryHandler_Handle(t *testing.T) {
	divergent := row("105", "b")
	divergent[sheet.ColumnAddress] = "elsewhere"

	wb := memory.NewWorkbook()
	wb.Seed(sheet.DefaultOrdersSheet, sheet.OrderHeader(), row("105", "a"), divergent, row("105.0", "c"))
	h := queries.NewAuditOrdersQueryHandler(wb.Table(sheet.DefaultOrdersSheet))

	anomalies, err := h.Handle(context.Background(), queries.NewAuditOrdersQuery())

	require.NoError(t, err)
	require.Len(t, anomalies, 2)
	assert.Equal(t, services.DivergentDetails, anomalies[0].Kind)
	assert.Equal(t, 3, anomalies[0].Position)
	assert.Equal(t, services.AmbiguousOrderNo, anomalies[1].Kind)
	assert.Equal(t, []string{"105", "105.0"}, anomalies[1].Related)
}

func TestAuditOrdersQueryHandler_Handle_Clean(t *testing.T) {
	wb := memory.NewWorkbook()
	wb.Seed(sheet.DefaultOrdersSheet, sheet.OrderHeader(), row("1", "a"), row("1", "b"))

	anomalies, err := queries.NewAuditOrdersQueryHandler(wb.Table(sheet.DefaultOrdersSheet)).
		Handle(context.Background(), queries.NewAuditOrdersQuery())

	require.NoError(t, err)
	assert.Empty(t, anomalies)
}
