// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs run on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// 1. DispatchStatusJob - counts dispatches per status and publishes the
// drayage_dispatches gauge (default schedule "*/30 * * * * *")
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statusCountsHandler, metrics, cfg.Jobs.StatusSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and retried on the next tick; the gauge keeps its
// previous values meanwhile.
package jobs
