package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Karun12234/mlb-inning-report/internal/config"
	"github.com/Karun12234/mlb-inning-report/internal/database"
	"github.com/Karun12234/mlb-inning-report/internal/logger"
	"github.com/Karun12234/mlb-inning-report/internal/report"
	"github.com/Karun12234/mlb-inning-report/internal/repository"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	dateFlag   string
	inningFlag int
	outputFlag string

	appLog    *logrus.Logger
	reportLog *logger.ReportLogger
	cfg       *config.Config
	db        *database.DB
	generator *report.Generator
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&dateFlag, "date", "d", "", "Report date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().IntVarP(&inningFlag, "inning", "i", 0, "Inning to report on (1-9, default from config)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output file (default stdout, or report.output_path when set)")

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(recommendationsCmd)
	rootCmd.AddCommand(parlaysCmd)
}

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate per-inning pitching reports for a daily slate",
	Long:  `Builds per-inning pitching and batting reports from stored game facts, with derived confidence grades, betting recommendations, and ranked parlays.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate the full report table",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, inning, err := reportScope()
		if err != nil {
			return err
		}

		table, err := generator.Table(cmd.Context(), date, inning)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		rows := make([]map[string]any, 0, len(table))
		for _, row := range table {
			rows = append(rows, row.Columns())
		}

		return writeOutput(envelope(date, inning, "table", rows))
	},
}

var recommendationsCmd = &cobra.Command{
	Use:   "recommendations",
	Short: "Derive top picks per category from the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, inning, err := reportScope()
		if err != nil {
			return err
		}

		table, err := generator.Table(cmd.Context(), date, inning)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		picks := report.Recommendations(table)
		counts := make(map[string]int, len(picks))
		for category, list := range picks {
			counts[category] = len(list)
		}
		reportLog.LogRecommendations(date.Format("2006-01-02"), inning, counts)

		return writeOutput(envelope(date, inning, "recommendations", picks))
	},
}

var parlaysCmd = &cobra.Command{
	Use:   "parlays [category]",
	Short: "Rank two-leg parlay candidates, optionally for one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, inning, err := reportScope()
		if err != nil {
			return err
		}

		table, err := generator.Table(cmd.Context(), date, inning)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		if len(args) == 1 {
			parlays, err := report.ParlaysFor(table, args[0])
			if err != nil {
				return err
			}
			logParlays(date, inning, args[0], parlays)
			return writeOutput(envelope(date, inning, "parlays", map[string][]report.Parlay{args[0]: parlays}))
		}

		all := report.Parlays(table)
		for category, parlays := range all {
			logParlays(date, inning, category, parlays)
		}
		return writeOutput(envelope(date, inning, "parlays", all))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	reportLog = logger.NewReportLogger(appLog)

	var err error
	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	generator = report.NewGenerator(
		repository.NewPostgresGameRepository(db),
		repository.NewPostgresPitcherFactRepository(db),
		repository.NewPostgresBattingFactRepository(db),
		appLog,
	)

	return nil
}

// reportScope resolves the date and inning flags against config defaults.
func reportScope() (time.Time, int, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("invalid date %q: %w", dateFlag, err)
		}
		date = parsed
	}

	inning := inningFlag
	if inning == 0 {
		inning = cfg.Report.DefaultInning
	}

	return date, inning, nil
}

func logParlays(date time.Time, inning int, category string, parlays []report.Parlay) {
	topScore := 0.0
	if len(parlays) > 0 {
		topScore = parlays[0].Score
	}
	reportLog.LogParlays(date.Format("2006-01-02"), inning, category, len(parlays), topScore)
}

type reportEnvelope struct {
	ReportID    string `json:"report_id"`
	Kind        string `json:"kind"`
	Date        string `json:"date"`
	Inning      int    `json:"inning"`
	GeneratedAt string `json:"generated_at"`
	Version     string `json:"version"`
	Data        any    `json:"data"`
}

func envelope(date time.Time, inning int, kind string, data any) reportEnvelope {
	return reportEnvelope{
		ReportID:    uuid.New().String(),
		Kind:        kind,
		Date:        date.Format("2006-01-02"),
		Inning:      inning,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     Version,
		Data:        data,
	}
}

func writeOutput(env reportEnvelope) error {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	out = append(out, '\n')

	path := outputFlag
	if path == "" && cfg.Report.OutputPath != "" {
		path = filepath.Join(cfg.Report.OutputPath,
			fmt.Sprintf("%s-%s-inning%d.json", env.Kind, env.Date, env.Inning))
	}

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	appLog.WithFields(logrus.Fields{
		"path":   path,
		"kind":   env.Kind,
		"date":   env.Date,
		"inning": env.Inning,
	}).Info("Report written")

	return nil
}
