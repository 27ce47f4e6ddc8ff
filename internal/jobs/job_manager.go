package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	restockReportJob *RestockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	restockReportHandler RestockReportHandler,
	restockReportSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		restockReportJob: NewRestockReportJob(restockReportHandler, restockReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.restockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start restock report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.restockReportJob.Stop()
}
