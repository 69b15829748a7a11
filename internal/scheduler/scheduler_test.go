package scheduler

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(nil, log.New(io.Discard, "", 0))
}

func TestScheduleDailyIngestion(t *testing.T) {
	s := newTestScheduler()
	err := s.ScheduleDailyIngestion("0 0 6 * * *", 2)
	require.NoError(t, err)
	assert.Len(t, s.Entries(), 1)
}

func TestScheduleDailyIngestionInvalidExpression(t *testing.T) {
	s := newTestScheduler()
	err := s.ScheduleDailyIngestion("not a cron expression", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add job")
}

func TestStartRequiresJobs(t *testing.T) {
	s := newTestScheduler()
	err := s.Start()
	require.Error(t, err)
}

func TestStartStopLifecycle(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.ScheduleDailyIngestion("0 0 6 * * *", 1))

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	// Schedule changes are rejected while running.
	err := s.ScheduleDailyIngestion("0 30 6 * * *", 1)
	require.Error(t, err)

	// Double start is rejected.
	require.Error(t, s.Start())

	next := s.GetNextRun()
	assert.False(t, next.IsZero())
	assert.True(t, next.After(time.Now().Add(-time.Second)))

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.True(t, s.GetNextRun().IsZero())
}
