// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(listHandler, schedule, threshold, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StalePendingReminderJob lists Pending delivery requests older than the
// configured threshold and logs them so ops can chase delivery partners. The
// schedule is a six-field cron expression taken from configuration.
//
// Jobs only read; every state change in the system goes through a command
// handler invoked by a caller.
package jobs
