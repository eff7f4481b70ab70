package jobs

import (
	"context"
	"time"

	"hostel-ledger-backend/internal/config"
	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"
	"hostel-ledger-backend/internal/service"
	"hostel-ledger-backend/internal/storage"
)

// jobTimeout bounds a single job run.
const jobTimeout = 5 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services  *Services
	snapshots repository.SnapshotRepository
	archive   storage.Archive
	config    *config.Config
	now       func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Dashboard service.DashboardService
	Reports   service.ReportService
	Notifier  service.Notifier
}

// NewJobRunner creates a new job runner with all dependencies. A nil
// archive turns off workbook archiving.
func NewJobRunner(services *Services, snapshots repository.SnapshotRepository, archive storage.Archive, cfg *config.Config) *JobRunner {
	return &JobRunner{
		services:  services,
		snapshots: snapshots,
		archive:   archive,
		config:    cfg,
		now:       time.Now,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// currentMonth is the month containing now in the configured timezone.
func (jr *JobRunner) currentMonth() domain.Month {
	return domain.MonthOf(jr.now().In(jr.config.Location()))
}

// runWithRecovery wraps job execution with panic recovery and a timeout.
// It returns the job's error so manual runs can report it.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = &JobPanicError{Job: jobName, Value: r}
		}
	}()

	start := jr.now()
	logger.Info("Starting job", "job", jobName)
	if err = jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName, "duration", jr.now().Sub(start))
	return nil
}

// JobPanicError reports a job that panicked instead of returning.
type JobPanicError struct {
	Job   string
	Value interface{}
}

func (e *JobPanicError) Error() string {
	return "job " + e.Job + " panicked"
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() error {
	if err := jr.SendDuesDigest(); err != nil {
		return err
	}
	return jr.TakeMonthlySnapshot()
}
