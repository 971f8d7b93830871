// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. AdvancePendingOrdersJob - Periodically moves every Pending order to Processing
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceHandler, cfg.SweepSchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a six-field cron expression with seconds, injected
// from configuration (SWEEP_SCHEDULE). The sweep is idempotent: a run that
// finds no Pending orders moves nothing.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - A failed job start aborts application startup
package jobs
