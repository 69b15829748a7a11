package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerDefaultsToInfoOnBadLevel(t *testing.T) {
	log := NewLogger("not-a-level", "development")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerParsesLevel(t *testing.T) {
	log := NewLogger("debug", "development")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewLoggerProductionUsesJSON(t *testing.T) {
	log := NewLogger("info", "production")
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	dev := NewLogger("info", "development")
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)
}

func TestReportLoggerGeneration(t *testing.T) {
	log, buf := setupTestLogger()
	reportLogger := NewReportLogger(log)

	reportLogger.LogReportGeneration("2024-07-04", 1, 15, 30, 0, 812.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "2024-07-04", logEntry["report_date"])
	assert.Equal(t, float64(1), logEntry["inning"])
	assert.Equal(t, "report", logEntry["component"])
}

func TestReportLoggerRowSkipped(t *testing.T) {
	log, buf := setupTestLogger()
	reportLogger := NewReportLogger(log)

	reportLogger.LogRowSkipped(745123, "Cole, Gerrit", "history query failed")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(745123), logEntry["game_id"])
	assert.Equal(t, "Cole, Gerrit", logEntry["pitcher"])
	assert.Equal(t, "history query failed", logEntry["reason"])
}

func TestReportLoggerRecommendations(t *testing.T) {
	log, buf := setupTestLogger()
	reportLogger := NewReportLogger(log)

	reportLogger.LogRecommendations("2024-07-04", 1, map[string]int{
		"Strikeouts": 4,
		"NRFI":       4,
	})

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(4), logEntry["picks_Strikeouts"])
	assert.Equal(t, float64(4), logEntry["picks_NRFI"])
}

func TestReportLoggerParlays(t *testing.T) {
	log, buf := setupTestLogger()
	reportLogger := NewReportLogger(log)

	reportLogger.LogParlays("2024-07-04", 1, "NRFI Parlays", 6, 3.0)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "NRFI Parlays", logEntry["category"])
	assert.Equal(t, float64(6), logEntry["pairs"])
	assert.Equal(t, float64(3.0), logEntry["top_score"])
}

func TestLoggerJSONFormat(t *testing.T) {
	log, buf := setupTestLogger()
	reportLogger := NewReportLogger(log)

	reportLogger.LogReportGeneration("2024-07-04", 3, 12, 24, 1, 455.0)

	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	assert.NoError(t, err)
	assert.NotEmpty(t, logEntry)
}

func BenchmarkReportLoggerGeneration(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	reportLogger := NewReportLogger(log)

	for i := 0; i < b.N; i++ {
		reportLogger.LogReportGeneration("2024-07-04", 1, 15, 30, 0, 812.5)
	}
}
