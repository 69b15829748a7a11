// Package config provides configuration management for the MLB inning report service.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	StatsAPI  StatsAPIConfig  `mapstructure:"stats_api" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host" validate:"required"`
	Port           int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name           string `mapstructure:"name" validate:"required"`
	User           string `mapstructure:"user" validate:"required"`
	Password       string `mapstructure:"password" validate:"required"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"required,gt=0"`
}

// StatsAPIConfig represents the MLB stats feed client configuration
type StatsAPIConfig struct {
	BaseURL               string  `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds        int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts         int     `mapstructure:"retry_attempts" validate:"required,gte=0"`
	RequestsPerSecond     float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
	PlayerCacheTTLSeconds int     `mapstructure:"player_cache_ttl_seconds" validate:"required,gt=0"`
}

// ReportConfig represents report generation configuration
type ReportConfig struct {
	DefaultInning int    `mapstructure:"default_inning" validate:"required,min=1,max=9"`
	OutputPath    string `mapstructure:"output_path" validate:"required"`
}

// IngestionConfig represents the ingestion pipeline configuration
type IngestionConfig struct {
	SeasonStart   string `mapstructure:"season_start" validate:"required,datetime=2006-01-02"`
	Schedule      string `mapstructure:"schedule" validate:"required"`
	BatchSize     int    `mapstructure:"batch_size" validate:"required,gt=0"`
	LookbackDays  int    `mapstructure:"lookback_days" validate:"required,gt=0"`
	AWSRegion     string `mapstructure:"aws_region"`
	AWSSecretName string `mapstructure:"aws_secret_name"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
