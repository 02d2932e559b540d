package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit every five minutes.
const DefaultAuditSchedule = "@every 5m"

// auditTimeout bounds a single audit run.
const auditTimeout = time.Minute

// IntegrityAuditJob periodically scans the orders sheet and logs rows that grouping
// by order number would silently absorb. It only reads.
type IntegrityAuditJob struct {
	handler  queries.AuditOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewIntegrityAuditJob creates the job. schedule accepts standard five-field cron
// expressions and descriptors such as "@every 5m".
func NewIntegrityAuditJob(handler queries.AuditOrdersQueryHandler, schedule string, logger *slog.Logger) *IntegrityAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &IntegrityAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "integrity_audit_job"),
	}
}

// Start schedules the audit.
func (j *IntegrityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Integrity audit failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Integrity audit job started", "schedule", j.schedule)
	return nil
}

// RunOnce audits the sheet now and logs every anomaly at WARN.
func (j *IntegrityAuditJob) RunOnce(ctx context.Context) ([]services.Anomaly, error) {
	anomalies, err := j.handler.Handle(ctx, queries.NewAuditOrdersQuery())
	if err != nil {
		return nil, err
	}

	for _, a := range anomalies {
		j.logger.WarnContext(ctx, "Order sheet anomaly",
			"kind", a.Kind.String(),
			"orderNo", a.OrderNo,
			"position", a.Position,
			"detail", a.String(),
		)
	}
	if len(anomalies) == 0 {
		j.logger.DebugContext(ctx, "Order sheet is consistent")
	}
	return anomalies, nil
}

// Stop stops scheduling and waits for a running audit to finish.
func (j *IntegrityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Integrity audit job stopped")
}
