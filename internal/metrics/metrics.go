// Package metrics provides the centralized Prometheus metrics registry for
// the report service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ReportsGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "reports_generated_total",
		Help:      "Total number of report tables generated",
	})
	ReportRowsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "report_rows_total",
		Help:      "Total number of report rows emitted",
	})
	ReportRowErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "report_row_errors_total",
		Help:      "Total number of report rows skipped due to lookup errors",
	})
	GamesIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "games_ingested_total",
		Help:      "Total number of games ingested from the stats feed",
	})
	FactRowsIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "fact_rows_ingested_total",
		Help:      "Total number of inning fact rows written",
	})
	IngestionErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "ingestion_errors_total",
		Help:      "Total number of ingestion failures",
	})
	StatsAPIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlb_inning_report",
		Name:      "stats_api_requests_total",
		Help:      "Total requests to the MLB stats feed by endpoint",
	}, []string{"endpoint"})
)

// Gauge metrics
var (
	SlateGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mlb_inning_report",
		Name:      "slate_games",
		Help:      "Number of games on the most recently loaded slate",
	})
	LastIngestionTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mlb_inning_report",
		Name:      "last_ingestion_timestamp_seconds",
		Help:      "Unix time of the last successful ingestion run",
	})
)

// Histogram metrics
var (
	ReportGenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mlb_inning_report",
		Name:      "report_generation_duration_seconds",
		Help:      "Duration of report table generation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	IngestionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mlb_inning_report",
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of full ingestion runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600, 1800},
	})
	StatsAPILatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mlb_inning_report",
		Name:      "stats_api_latency_seconds",
		Help:      "Latency of stats feed requests in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(ReportsGeneratedTotal)
		registry.MustRegister(ReportRowsTotal)
		registry.MustRegister(ReportRowErrorsTotal)
		registry.MustRegister(GamesIngestedTotal)
		registry.MustRegister(FactRowsIngestedTotal)
		registry.MustRegister(IngestionErrorsTotal)
		registry.MustRegister(StatsAPIRequestsTotal)

		// Register gauge metrics
		registry.MustRegister(SlateGames)
		registry.MustRegister(LastIngestionTimestamp)

		// Register histogram metrics
		registry.MustRegister(ReportGenerationDuration)
		registry.MustRegister(IngestionDuration)
		registry.MustRegister(StatsAPILatency)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordStatsAPIRequest records one stats feed request.
func RecordStatsAPIRequest(endpoint string, durationSeconds float64) {
	StatsAPIRequestsTotal.WithLabelValues(endpoint).Inc()
	StatsAPILatency.Observe(durationSeconds)
}

// RecordIngestionRun records a completed ingestion run.
func RecordIngestionRun(durationSeconds float64, when float64) {
	IngestionDuration.Observe(durationSeconds)
	LastIngestionTimestamp.Set(when)
}
