package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Karun12234/mlb-inning-report/internal/datasource"
	"github.com/Karun12234/mlb-inning-report/internal/metrics"
	"github.com/Karun12234/mlb-inning-report/internal/models"
	"github.com/Karun12234/mlb-inning-report/internal/repository"
)

// IngestionService handles the data ingestion workflow: schedule slates in,
// per-inning fact rows in, everything idempotent on re-run.
type IngestionService struct {
	source      datasource.DataSource
	gameRepo    repository.GameRepository
	pitcherRepo repository.PitcherFactRepository
	battingRepo repository.BattingFactRepository
	validator   *DataValidator
	normalizer  *DataNormalizer
	metrics     *IngestionMetrics
	logger      *log.Logger
	batchSize   int
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	source datasource.DataSource,
	gameRepo repository.GameRepository,
	pitcherRepo repository.PitcherFactRepository,
	battingRepo repository.BattingFactRepository,
	validator *DataValidator,
	normalizer *DataNormalizer,
	logger *log.Logger,
	batchSize int,
) *IngestionService {
	if batchSize <= 0 {
		batchSize = 100
	}

	return &IngestionService{
		source:      source,
		gameRepo:    gameRepo,
		pitcherRepo: pitcherRepo,
		battingRepo: battingRepo,
		validator:   validator,
		normalizer:  normalizer,
		metrics:     NewIngestionMetrics(),
		logger:      logger,
		batchSize:   batchSize,
	}
}

// IngestSchedule fetches and stores the game slate for one date. Pairings
// whose teams cannot be normalized are dropped with a validation error, never
// stored half-formed.
func (s *IngestionService) IngestSchedule(ctx context.Context, date time.Time) ([]*models.GamePairing, error) {
	sourceGames, err := s.source.FetchSchedule(ctx, date)
	if err != nil {
		s.metrics.RecordError()
		metrics.IngestionErrorsTotal.Inc()
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	return s.storeSchedule(ctx, date, sourceGames)
}

// storeSchedule normalizes, validates and upserts one day's slate
func (s *IngestionService) storeSchedule(ctx context.Context, date time.Time, sourceGames []datasource.GameData) ([]*models.GamePairing, error) {
	var games []*models.GamePairing
	for i := range sourceGames {
		game, err := s.normalizer.NormalizeGame(&sourceGames[i])
		if err != nil {
			s.metrics.RecordValidationError()
			s.logger.Printf("Skipping game %d: %v", sourceGames[i].GameID, err)
			continue
		}
		if errs := s.validator.ValidateGame(game); len(errs) > 0 {
			s.metrics.RecordValidationError()
			s.logger.Printf("Game %d validation failed: %v", game.GameID, errs)
			continue
		}
		games = append(games, game)
	}

	if err := s.gameRepo.UpsertBatch(ctx, games); err != nil {
		s.metrics.RecordError()
		metrics.IngestionErrorsTotal.Inc()
		return nil, fmt.Errorf("failed to store schedule: %w", err)
	}

	s.metrics.AddGames(len(games))
	metrics.GamesIngestedTotal.Add(float64(len(games)))
	metrics.SlateGames.Set(float64(len(games)))
	s.logger.Printf("Ingested %d games for %s", len(games), date.Format("2006-01-02"))
	return games, nil
}

// IngestGameFacts fetches and stores the per-inning fact rows for one
// completed game
func (s *IngestionService) IngestGameFacts(ctx context.Context, gameID int64) error {
	innings, err := s.source.FetchGameInnings(ctx, gameID)
	if err != nil {
		s.metrics.RecordError()
		metrics.IngestionErrorsTotal.Inc()
		return fmt.Errorf("failed to fetch innings for game %d: %w", gameID, err)
	}

	var pitcherRows []*models.PitcherFactRow
	for i := range innings.Pitching {
		row := s.normalizer.NormalizePitchingLine(innings, &innings.Pitching[i])
		if errs := s.validator.ValidatePitcherFact(row); len(errs) > 0 {
			s.metrics.RecordValidationError()
			s.logger.Printf("Pitcher fact rejected (game %d inning %d): %v", gameID, row.Inning, errs)
			continue
		}
		pitcherRows = append(pitcherRows, row)
	}

	var battingRows []*models.BattingFactRow
	for i := range innings.Batting {
		row := s.normalizer.NormalizeBattingLine(innings, &innings.Batting[i])
		if errs := s.validator.ValidateBattingFact(row); len(errs) > 0 {
			s.metrics.RecordValidationError()
			s.logger.Printf("Batting fact rejected (game %d inning %d): %v", gameID, row.Inning, errs)
			continue
		}
		battingRows = append(battingRows, row)
	}

	for start := 0; start < len(pitcherRows); start += s.batchSize {
		end := min(start+s.batchSize, len(pitcherRows))
		if err := s.pitcherRepo.InsertBatch(ctx, pitcherRows[start:end]); err != nil {
			s.metrics.RecordError()
			metrics.IngestionErrorsTotal.Inc()
			return fmt.Errorf("failed to store pitcher facts: %w", err)
		}
	}
	for start := 0; start < len(battingRows); start += s.batchSize {
		end := min(start+s.batchSize, len(battingRows))
		if err := s.battingRepo.InsertBatch(ctx, battingRows[start:end]); err != nil {
			s.metrics.RecordError()
			metrics.IngestionErrorsTotal.Inc()
			return fmt.Errorf("failed to store batting facts: %w", err)
		}
	}

	s.metrics.AddFactRows(len(pitcherRows), len(battingRows))
	metrics.FactRowsIngestedTotal.Add(float64(len(pitcherRows) + len(battingRows)))
	return nil
}

// IngestDateRange runs full ingestion for each date in [start, end]: the
// slate first, then facts for every game whose status marks it finished.
// A failed game costs that game only.
func (s *IngestionService) IngestDateRange(ctx context.Context, start, end time.Time) (*IngestionMetrics, error) {
	s.metrics.Reset()
	runStart := time.Now()

	s.logger.Printf("Starting ingestion from %s to %s",
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		sourceGames, err := s.source.FetchSchedule(ctx, date)
		if err != nil {
			s.metrics.RecordError()
			metrics.IngestionErrorsTotal.Inc()
			s.logger.Printf("Failed to fetch schedule for %s: %v", date.Format("2006-01-02"), err)
			continue
		}

		if _, err := s.storeSchedule(ctx, date, sourceGames); err != nil {
			s.logger.Printf("Failed to ingest schedule for %s: %v", date.Format("2006-01-02"), err)
			continue
		}

		for _, g := range sourceGames {
			if !gameFinished(g.Status) {
				continue
			}
			if err := s.IngestGameFacts(ctx, g.GameID); err != nil {
				s.logger.Printf("Failed to ingest facts for game %d: %v", g.GameID, err)
				continue
			}
			s.metrics.RecordGame()
		}
	}

	s.metrics.SetDuration(time.Since(runStart))
	metrics.RecordIngestionRun(time.Since(runStart).Seconds(), float64(time.Now().Unix()))
	s.logger.Printf("Ingestion complete: %s", s.metrics.String())

	return s.metrics, nil
}

// gameFinished reports whether a provider status marks the game complete
func gameFinished(status string) bool {
	switch strings.ToLower(status) {
	case "final", "game over", "completed early":
		return true
	}
	return false
}

// GetMetrics returns current ingestion metrics
func (s *IngestionService) GetMetrics() *IngestionMetrics {
	return s.metrics
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
