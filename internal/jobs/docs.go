// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field and run in UTC.
//
// # Available Jobs
//
// StatisticsSnapshotJob computes every company's report for the previous UTC
// day and stores it as a statistics snapshot. Its schedule comes from
// STATISTICS_CRON and defaults to DefaultStatisticsSchedule.
//
// # Usage
//
//	job := jobs.NewStatisticsSnapshotJob(handler, kernel.SystemClock{}, cfg.StatisticsCron, log)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal().Err(err).Msg("start jobs")
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried at the next tick. A bad schedule fails
// StartAll, which stops any job already started.
package jobs
