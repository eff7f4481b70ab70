package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"hostel-ledger-backend/internal/jobs"
	"hostel-ledger-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler in the configured timezone with seconds
// precision and registers every job. An invalid cron spec is an error.
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(jobRunner.Config().Location()),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	entries := []struct {
		name string
		spec string
		run  func() error
	}{
		{"SendDuesDigest", cfg.SendDuesDigest, s.jobs.SendDuesDigest},
		{"TakeMonthlySnapshot", cfg.TakeMonthlySnapshot, s.jobs.TakeMonthlySnapshot},
	}

	for _, e := range entries {
		run := e.run
		if _, err := s.cron.AddFunc(e.spec, func() { _ = run() }); err != nil {
			return fmt.Errorf("register %s job with spec %q: %w", e.name, e.spec, err)
		}
		logger.Info("Registered cron job", "job", e.name, "spec", e.spec)
	}
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// Entries reports the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
