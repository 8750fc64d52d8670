package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePackageJob *StalePackageJob
}

func NewJobManager(stalePackageJob *StalePackageJob) *JobManager {
	return &JobManager{
		stalePackageJob: stalePackageJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePackageJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale package job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePackageJob.Stop()
}
