package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleSessionJob periodically reports stage sessions that have been open
// longer than the configured threshold, so floor supervisors can follow up
// on invoices stuck mid-stage. The job only reads; it never closes or
// modifies sessions.
type StaleSessionJob struct {
	handler   queries.GetOpenSessionsQueryHandler
	cron      *cron.Cron
	spec      string
	threshold time.Duration
	logger    *slog.Logger
}

// NewStaleSessionJob creates a monitor that runs on the given cron spec and
// flags sessions older than threshold.
func NewStaleSessionJob(
	handler queries.GetOpenSessionsQueryHandler,
	spec string,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleSessionJob {
	return &StaleSessionJob{
		handler:   handler,
		cron:      cron.New(),
		spec:      spec,
		threshold: threshold,
		logger:    logger.With("component", "stale_session_job"),
	}
}

// Start schedules the monitor.
func (j *StaleSessionJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale session monitor started",
		"spec", j.spec, "threshold", j.threshold.String())
	return nil
}

// Stop stops the monitor.
func (j *StaleSessionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale session monitor stopped")
}

func (j *StaleSessionJob) run() {
	ctx := context.Background()

	cutoff := time.Now().Add(-j.threshold)
	query := queries.NewGetOpenSessionsQuery(&cutoff)

	sessions, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale session check failed", "error", err)
		return
	}

	for _, session := range sessions {
		j.logger.WarnContext(ctx, "Stage session open past threshold",
			"invoice_no", session.InvoiceNo,
			"stage", session.Stage,
			"operator", session.OperatorEmail,
			"started_at", session.StartedAt,
			"open_for", time.Since(session.StartedAt).Round(time.Minute).String(),
		)
	}
}
