package service

import (
	"fmt"
	"sync"
	"time"
)

// IngestionMetrics tracks statistics about one ingestion run
type IngestionMetrics struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	TotalGames       int
	CompletedGames   int
	PitcherRows      int
	BattingRows      int
	ValidationErrors int
	Errors           int
}

// NewIngestionMetrics creates a new metrics tracker
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{
		StartTime: time.Now(),
	}
}

// Reset resets all metrics
func (m *IngestionMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.TotalGames = 0
	m.CompletedGames = 0
	m.PitcherRows = 0
	m.BattingRows = 0
	m.ValidationErrors = 0
	m.Errors = 0
}

// AddGames adds to the scheduled game count
func (m *IngestionMetrics) AddGames(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalGames += n
}

// RecordGame increments the completed game count
func (m *IngestionMetrics) RecordGame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompletedGames++
}

// AddFactRows adds stored pitcher and batting row counts
func (m *IngestionMetrics) AddFactRows(pitcher, batting int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PitcherRows += pitcher
	m.BattingRows += batting
}

// RecordError increments error count
func (m *IngestionMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// RecordValidationError increments validation error count
func (m *IngestionMetrics) RecordValidationError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationErrors++
}

// SetDuration records the run duration
func (m *IngestionMetrics) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duration = d
}

// String returns a formatted string representation of metrics
func (m *IngestionMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf(
		"IngestionMetrics{Games=%d, Completed=%d, PitcherRows=%d, BattingRows=%d, ValidationErrors=%d, Errors=%d, Duration=%v}",
		m.TotalGames,
		m.CompletedGames,
		m.PitcherRows,
		m.BattingRows,
		m.ValidationErrors,
		m.Errors,
		m.Duration,
	)
}
