package datasource

import (
	"fmt"
	"log"
	"time"

	"github.com/Karun12234/mlb-inning-report/internal/config"
)

const dataSourceDisabledMsg = "data source disabled"

// SourceType represents the type of data source
type SourceType string

const (
	// MLB Stats API data source type
	StatsAPISourceType SourceType = "mlb_stats_api"
)

// Factory creates DataSource implementations based on configuration
type Factory struct {
	logger *log.Logger
	config *config.Config
}

// NewFactory creates a new data source factory
func NewFactory(cfg *config.Config, logger *log.Logger) *Factory {
	return &Factory{
		logger: logger,
		config: cfg,
	}
}

// NewStatsSource creates the stats feed client with the configured rate
// limit and retry policy
func (f *Factory) NewStatsSource() (DataSource, error) {
	if f.config == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	apiCfg := f.config.StatsAPI
	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(apiCfg.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = apiCfg.RetryAttempts
	httpCfg.RateLimit = apiCfg.RequestsPerSecond

	httpClient := NewRateLimitedHTTPClient(httpCfg, f.logger)
	source := NewStatsAPIClient(httpClient, apiCfg.BaseURL, true, f.logger)

	if f.logger != nil {
		f.logger.Printf("Created data source: %s", source.Name())
	}
	return source, nil
}

// Create creates a new data source based on the type
func (f *Factory) Create(sourceType SourceType) (DataSource, error) {
	switch sourceType {
	case StatsAPISourceType:
		return f.NewStatsSource()
	default:
		return nil, fmt.Errorf("unknown data source type: %s", sourceType)
	}
}
