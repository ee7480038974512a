package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs of the application.
type JobManager struct {
	jobs    []job
	started []job
}

func NewJobManager(purgeJob *EmptyOrderPurgeJob) *JobManager {
	return &JobManager{
		jobs: []job{purgeJob},
	}
}

// StartAll starts every job. If one fails, the already started jobs are
// stopped before the error is returned.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
		jm.started = append(jm.started, j)
	}

	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
