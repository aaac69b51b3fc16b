// Package jobs provides scheduled background tasks for the checkout service.
//
// Jobs use github.com/robfig/cron/v3 with second-level schedules:
//
//  1. OutboxRelayJob runs every second and publishes pending order events.
//  2. StaleOrderJob runs every minute and cancels pending orders older than
//     the configured payment window.
//
// Both skip a tick while the previous pass is still running.
//
//	jobManager := jobs.NewJobManager(relayJob, staleJob, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Errors are logged and the next tick retries.
package jobs
