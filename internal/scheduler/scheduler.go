package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/Karun12234/mlb-inning-report/internal/service"
)

// Scheduler manages scheduled data ingestion jobs
type Scheduler struct {
	cron         *cron.Cron
	ingestionSvc *service.IngestionService
	logger       *log.Logger
	mu           sync.RWMutex
	isRunning    bool
	jobIDs       []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(ingestionSvc *service.IngestionService, logger *log.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithLocation(time.UTC), cron.WithSeconds()),
		ingestionSvc: ingestionSvc,
		logger:       logger,
		jobIDs:       make([]cron.EntryID, 0),
	}
}

// ScheduleDailyIngestion schedules the recurring slate ingestion job. Each run
// ingests completed games from the past lookbackDays days plus today's
// schedule, so late-finishing games are picked up on the next run.
func (s *Scheduler) ScheduleDailyIngestion(cronExpression string, lookbackDays int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	if lookbackDays < 1 {
		lookbackDays = 1
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
		defer cancel()

		end := time.Now().UTC().Truncate(24 * time.Hour)
		start := end.AddDate(0, 0, -lookbackDays)

		s.logger.Printf("Starting scheduled ingestion for %s to %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))

		metrics, err := s.ingestionSvc.IngestDateRange(ctx, start, end)
		if err != nil {
			s.logger.Printf("Error during scheduled ingestion: %v", err)
			return
		}
		s.logger.Printf("Scheduled ingestion completed: %s", metrics.String())
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.Printf("Scheduled daily ingestion job with cron expression: %s", cronExpression)

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Printf("Scheduler started with %d jobs", len(s.jobIDs))

	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Printf("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			nextTime := entry.Next
			if nextRun.IsZero() || nextTime.Before(nextRun) {
				nextRun = nextTime
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}
