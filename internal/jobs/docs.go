// Package jobs provides scheduled background tasks for the order
// management service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ArchivalSweepJob - Runs daily at midnight to reclassify reactor
// cycle archive state (expired and disabled cycles leave circulation,
// re-enabled unexpired ones come back). It also runs once at startup,
// so a service restarted mid-day never serves stale archive state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, clock, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; the sweep is
// idempotent, so a missed or repeated run never corrupts state.
package jobs
