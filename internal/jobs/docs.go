// Package jobs provides scheduled background tasks for the parcel tracking service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the schedule
// and log through log/slog.
//
// # Available Jobs
//
// 1. StalePackageJob - every ten minutes by default, warns about live packages
// older than a configured age that still have no status history
//
// # Usage
//
//	job := jobs.NewStalePackageJob(staleHandler, cfg.StalePackageCron, cfg.StalePackageAfter, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed check is logged and the schedule keeps running; the next tick tries again.
// Jobs never write: they only report.
package jobs
