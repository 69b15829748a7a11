package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestCountersIncrement(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		ReportsGeneratedTotal.Inc()
		ReportRowsTotal.Add(30)
		ReportRowErrorsTotal.Inc()
		GamesIngestedTotal.Add(15)
		FactRowsIngestedTotal.Add(270)
		IngestionErrorsTotal.Inc()
	})
}

func TestSlateGamesGauge(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name  string
		games float64
	}{
		{"full slate", 15},
		{"off day", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				SlateGames.Set(tt.games)
			})
		})
	}
}

func TestRecordStatsAPIRequest(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordStatsAPIRequest("schedule", 0.2)
		RecordStatsAPIRequest("feed_live", 1.4)
	})
}

func TestRecordIngestionRun(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordIngestionRun(42.5, float64(time.Now().Unix()))
	})
}

func TestMetricsHandler(t *testing.T) {
	InitRegistry()

	handler := Handler()
	require.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)

	ReportsGeneratedTotal.Inc()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "mlb_inning_report_reports_generated_total"),
		"expected report counter in scrape output")
}

func BenchmarkRecordStatsAPIRequest(b *testing.B) {
	InitRegistry()

	for i := 0; i < b.N; i++ {
		RecordStatsAPIRequest("schedule", 0.2)
	}
}
