package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRestockReportSchedule runs the report every day at 08:00:00.
const DefaultRestockReportSchedule = "0 0 8 * * *"

// RestockReportHandler generates a restock report and returns the number of alerts sent.
type RestockReportHandler interface {
	Handle(ctx context.Context, cmd commands.GenerateRestockReportCommand) (int, error)
}

// RestockReportJob periodically sends one low stock alert per product below threshold.
type RestockReportJob struct {
	handler  RestockReportHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewRestockReportJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule selects DefaultRestockReportSchedule.
func NewRestockReportJob(handler RestockReportHandler, schedule string, logger *zap.Logger) *RestockReportJob {
	if schedule == "" {
		schedule = DefaultRestockReportSchedule
	}
	return &RestockReportJob{
		handler:  handler,
		schedule: schedule,
		timeout:  time.Minute,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "restock_report_job")),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *RestockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid restock report schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("restock report job started", zap.String("schedule", j.schedule))
	return nil
}

// Run generates one report. Failures are logged; the next tick retries.
func (j *RestockReportJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	alerts, err := j.handler.Handle(ctx, commands.NewGenerateRestockReportCommand())
	if err != nil {
		j.logger.Error("restock report job failed", zap.Error(err))
		return
	}

	j.logger.Debug("restock report job finished", zap.Int("alerts", alerts))
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *RestockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("restock report job stopped")
}
