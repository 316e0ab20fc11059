// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every two seconds to publish pending order events to Kafka
// 2. OTPSweepJob - Runs every minute to clear expired password-reset codes
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, batchSize, sweepHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next tick. Overlapping runs are skipped.
package jobs
