package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs   []namedJob
	logger *slog.Logger
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a manager for the given jobs. A nil job is skipped,
// which is how disabled jobs are left out.
func NewJobManager(
	outboxRelayJob *OutboxRelayJob,
	staleOrderJob *StaleOrderJob,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger}
	if outboxRelayJob != nil {
		jm.jobs = append(jm.jobs, namedJob{name: "outbox relay", job: outboxRelayJob})
	}
	if staleOrderJob != nil {
		jm.jobs = append(jm.jobs, namedJob{name: "stale order", job: staleOrderJob})
	}
	return jm
}

// StartAll starts all scheduled jobs. If one fails to start, the jobs already
// started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
	}
	jm.logger.InfoContext(context.Background(), "Jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	for _, nj := range jm.jobs {
		nj.job.Stop()
	}
}
