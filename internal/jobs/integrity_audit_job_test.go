package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"ordersheet/internal/adapters/out/memory"
	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newHandler(rows ...sheet.Row) queries.AuditOrdersQueryHandler {
	wb := memory.NewWorkbook()
	wb.Seed(sheet.DefaultOrdersSheet, append([]sheet.Row{sheet.OrderHeader()}, rows...)...)
	return queries.NewAuditOrdersQueryHandler(wb.Table(sheet.DefaultOrdersSheet))
}

func TestIntegrityAuditJob_RunOnceLogsAnomalies(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	job := jobs.NewIntegrityAuditJob(newHandler(
		sheet.Row{"", "123", "", "", "Ann"},
		sheet.Row{"", "123", "", "", "Bob"},
		sheet.Row{"", "123.0"},
	), "", logger)

	anomalies, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Len(t, anomalies, 2)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "kind=divergent_details")
	assert.Contains(t, out, "kind=ambiguous_order_no")
	assert.Contains(t, out, "component=integrity_audit_job")
}

func TestIntegrityAuditJob_StartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	job := jobs.NewIntegrityAuditJob(newHandler(), "@every 1h", logger)

	require.NoError(t, job.Start())
	job.Stop()
}

func TestIntegrityAuditJob_InvalidSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	job := jobs.NewIntegrityAuditJob(newHandler(), "not a schedule", logger)

	require.Error(t, job.Start())
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	manager := jobs.NewJobManager(newHandler(), jobs.DefaultAuditSchedule, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
