// Package jobs provides scheduled background tasks for the quotation service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(expireQuotesHandler, cfg.ExpirySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// QuoteExpiryJob runs hourly by default. It reloads the administrator's view
// of the quote store and moves every Active quote whose valid-until date lies
// before today to Expired. Drafts and voided quotes are left alone.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. Quotes expired
// before the failure stay expired.
package jobs
