// Package main provides the entry point for the data ingestion service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Karun12234/mlb-inning-report/internal/config"
	"github.com/Karun12234/mlb-inning-report/internal/database"
	"github.com/Karun12234/mlb-inning-report/internal/datasource"
	"github.com/Karun12234/mlb-inning-report/internal/health"
	"github.com/Karun12234/mlb-inning-report/internal/logger"
	"github.com/Karun12234/mlb-inning-report/internal/metrics"
	"github.com/Karun12234/mlb-inning-report/internal/repository"
	"github.com/Karun12234/mlb-inning-report/internal/scheduler"
	"github.com/Karun12234/mlb-inning-report/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "path to configuration file")
		startFlag  = flag.String("start", "", "backfill start date (YYYY-MM-DD, default season start)")
		endFlag    = flag.String("end", "", "backfill end date (YYYY-MM-DD, default today)")
		daemon     = flag.Bool("daemon", false, "run the cron scheduler instead of a one-shot backfill")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ingestLog := log.New(os.Stdout, "ingestion: ", log.LstdFlags)
	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	factory := datasource.NewFactory(cfg, ingestLog)
	source, err := factory.NewStatsSource()
	if err != nil {
		log.Fatalf("Failed to create data source: %v", err)
	}

	names := service.NewNameFormatter(time.Duration(cfg.StatsAPI.PlayerCacheTTLSeconds) * time.Second)
	ingestion := service.NewIngestionService(
		source,
		repository.NewPostgresGameRepository(db),
		repository.NewPostgresPitcherFactRepository(db),
		repository.NewPostgresBattingFactRepository(db),
		service.NewDataValidator(ingestLog),
		service.NewDataNormalizer(names, ingestLog),
		ingestLog,
		cfg.Ingestion.BatchSize,
	)

	if !*daemon {
		start, end, err := backfillRange(cfg, *startFlag, *endFlag)
		if err != nil {
			log.Fatalf("Invalid date range: %v", err)
		}

		ingestLog.Printf("Starting backfill for %s to %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))

		runMetrics, err := ingestion.IngestDateRange(ctx, start, end)
		if err != nil {
			log.Fatalf("Backfill failed: %v", err)
		}
		ingestLog.Printf("Backfill completed: %s", runMetrics.String())
		return
	}

	// Daemon mode: serve health and metrics, run the cron scheduler until
	// interrupted.
	var metricsHandler = metrics.Handler()
	if !cfg.Metrics.Enabled {
		metricsHandler = nil
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: "data-ingestion",
		Version:     Version,
		Commit:      GitCommit,
		Port:        strconv.Itoa(cfg.Metrics.Port),
		Logger:      appLog,
		DB:          db,
		Metrics:     metricsHandler,
		MetricsPath: cfg.Metrics.Path,
	})
	if err := healthServer.Start(ctx); err != nil {
		log.Fatalf("Failed to start health server: %v", err)
	}

	sched := scheduler.NewScheduler(ingestion, ingestLog)
	if err := sched.ScheduleDailyIngestion(cfg.Ingestion.Schedule, cfg.Ingestion.LookbackDays); err != nil {
		log.Fatalf("Failed to schedule ingestion: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	healthServer.SetReady(true)

	ingestLog.Printf("Ingestion daemon started, next run at %s",
		sched.GetNextRun().Format(time.RFC3339))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	ingestLog.Printf("Shutdown signal received: %v", sig)

	healthServer.SetReady(false)
	if err := sched.Stop(); err != nil {
		ingestLog.Printf("Error stopping scheduler: %v", err)
	}
	cancel()

	ingestLog.Println("Ingestion daemon shut down")
}

// backfillRange resolves the one-shot date range from flags and config.
func backfillRange(cfg *config.Config, startFlag, endFlag string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", cfg.Ingestion.SeasonStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid season start: %w", err)
	}
	if startFlag != "" {
		start, err = time.Parse("2006-01-02", startFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startFlag, err)
		}
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if endFlag != "" {
		end, err = time.Parse("2006-01-02", endFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endFlag, err)
		}
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	return start, end, nil
}
