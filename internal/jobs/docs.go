// Package jobs provides scheduled background tasks for the delivery backend.
//
// Jobs are cron-based using github.com/robfig/cron/v3 and managed through
// JobManager, which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(orderRepository, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleOrderWatchdogJob runs every minute and reports orders that have been
// sitting unpaid longer than the configured threshold. It only observes and
// logs; it never transitions orders, since payment may still arrive and
// cancellation is a caller decision.
package jobs
