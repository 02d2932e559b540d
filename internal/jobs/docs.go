// Package jobs provides scheduled background tasks for the order sheet.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// IntegrityAuditJob - scans the orders sheet for rows whose details diverge from the
// first row of their order and for order numbers that are equal as numbers but not as
// strings. Findings are logged at WARN; the sheet is never modified.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditHandler, "@every 5m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule accepts five-field cron expressions and descriptors ("@hourly",
// "@every 5m"). Overlapping runs are skipped.
package jobs
