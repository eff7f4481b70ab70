package scheduler

import (
	"testing"

	"hostel-ledger-backend/internal/config"
	"hostel-ledger-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler_RegistersJobs(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{
		SendDuesDigest:      "0 0 9 5 * *",
		TakeMonthlySnapshot: "0 5 0 1 * *",
	}}
	s, err := NewScheduler(jobs.NewJobRunner(&jobs.Services{}, nil, nil, cfg))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Entries())

	s.Start()
	s.Stop()
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{
		SendDuesDigest:      "every morning",
		TakeMonthlySnapshot: "0 5 0 1 * *",
	}}
	_, err := NewScheduler(jobs.NewJobRunner(&jobs.Services{}, nil, nil, cfg))
	assert.ErrorContains(t, err, "SendDuesDigest")
}
