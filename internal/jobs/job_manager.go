package jobs

import "fmt"

// JobManager coordinates the application's scheduled jobs behind one
// start/stop surface. The batch builder is currently the only job; OTP
// expiry needs no sweeper because codes are checked against their TTL at
// verification time.
type JobManager struct {
	autoBatchJob *AutoBatchJob
}

// NewJobManager creates a manager over the given jobs.
func NewJobManager(autoBatchJob *AutoBatchJob) *JobManager {
	return &JobManager{autoBatchJob: autoBatchJob}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.autoBatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto batch job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.autoBatchJob.Stop()
}
