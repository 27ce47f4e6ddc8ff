// Package jobs provides scheduled background tasks for the inventory service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so
// schedules have six fields: "sec min hour dom month dow".
//
// # Available Jobs
//
// RestockReportJob runs GenerateRestockReport on RESTOCK_REPORT_SCHEDULE
// (default "0 0 8 * * *", every day at 08:00). Each low stock product yields
// one alert on the configured notification sinks.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(restockHandler, cfg.RestockReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. An invalid schedule
// makes StartAll fail.
package jobs
