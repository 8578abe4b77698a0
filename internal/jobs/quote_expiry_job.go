package jobs

import (
	"context"
	"log/slog"
	"time"

	"quotation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the expiry sweep at the top of every hour.
const DefaultExpirySchedule = "0 0 * * * *"

// ExpireQuotesHandler is satisfied by commands.ExpireQuotesCommandHandler.
type ExpireQuotesHandler interface {
	Handle(ctx context.Context, command commands.ExpireQuotesCommand) ([]string, error)
}

// QuoteExpiryJob moves Active quotes past their validity date to Expired.
type QuoteExpiryJob struct {
	handler  ExpireQuotesHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQuoteExpiryJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule means DefaultExpirySchedule.
func NewQuoteExpiryJob(handler ExpireQuotesHandler, schedule string, logger *slog.Logger) *QuoteExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	return &QuoteExpiryJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "quote_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *QuoteExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep. Failures are logged; the next tick retries.
func (j *QuoteExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpireQuotesCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote expiry job failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if len(expired) > 0 {
		j.logger.InfoContext(ctx, "Quotes expired", "count", len(expired), "quote_numbers", expired)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote expiry job failed", "error", err)
	}
}

// Stop stops the scheduler; a sweep in progress is allowed to finish.
func (j *QuoteExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Quote expiry job stopped")
}
