// Package logger provides report-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// ReportLogger provides dedicated logging for report generation.
type ReportLogger struct {
	*logrus.Entry
}

// NewReportLogger creates a new report logger.
func NewReportLogger(baseLogger *logrus.Logger) *ReportLogger {
	return &ReportLogger{
		Entry: baseLogger.WithField("component", "report"),
	}
}

// LogReportGeneration logs a completed report generation run.
func (rl *ReportLogger) LogReportGeneration(reportDate string, inning, games, rows, skipped int, durationMs float64) {
	rl.WithFields(logrus.Fields{
		"report_date":            reportDate,
		"inning":                 inning,
		"games":                  games,
		"rows":                   rows,
		"rows_skipped":           skipped,
		"generation_duration_ms": durationMs,
	}).Info("Report generation completed")
}

// LogRowSkipped logs a report row that could not be built.
func (rl *ReportLogger) LogRowSkipped(gameID int, pitcher, reason string) {
	rl.WithFields(logrus.Fields{
		"game_id": gameID,
		"pitcher": pitcher,
		"reason":  reason,
	}).Warn("Report row skipped")
}

// LogRecommendations logs a derived recommendation set.
func (rl *ReportLogger) LogRecommendations(reportDate string, inning int, picksByCategory map[string]int) {
	fields := logrus.Fields{
		"report_date": reportDate,
		"inning":      inning,
	}
	for category, count := range picksByCategory {
		fields["picks_"+category] = count
	}
	rl.WithFields(fields).Info("Recommendations derived")
}

// LogParlays logs a ranked parlay set.
func (rl *ReportLogger) LogParlays(reportDate string, inning int, category string, pairs int, topScore float64) {
	rl.WithFields(logrus.Fields{
		"report_date": reportDate,
		"inning":      inning,
		"category":    category,
		"pairs":       pairs,
		"top_score":   topScore,
	}).Info("Parlays ranked")
}
