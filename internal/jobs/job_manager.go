package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs of the service.
type JobManager struct {
	quoteExpiryJob *QuoteExpiryJob
}

// NewJobManager creates a job manager; schedule configures the expiry job
// and may be empty for the default.
func NewJobManager(
	expireQuotesHandler ExpireQuotesHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quoteExpiryJob: NewQuoteExpiryJob(expireQuotesHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteExpiryJob.Stop()
}
