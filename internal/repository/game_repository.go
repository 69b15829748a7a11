package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Karun12234/mlb-inning-report/internal/database"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

const errScanGame = "failed to scan game: %w"

// PostgresGameRepository implements GameRepository for PostgreSQL
type PostgresGameRepository struct {
	db *database.DB
}

// NewPostgresGameRepository creates a new game repository
func NewPostgresGameRepository(db *database.DB) GameRepository {
	return &PostgresGameRepository{db: db}
}

// Upsert inserts or refreshes one game pairing. Probable pitchers change as
// game day approaches, so re-ingestion always wins.
func (r *PostgresGameRepository) Upsert(ctx context.Context, game *models.GamePairing) error {
	query := `
		INSERT INTO games (game_id, game_date, home_team, away_team, home_pitcher, away_pitcher)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			home_pitcher = EXCLUDED.home_pitcher,
			away_pitcher = EXCLUDED.away_pitcher
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		game.GameID, game.Date, game.HomeTeam, game.AwayTeam,
		game.HomePitcher, game.AwayPitcher,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}

	return nil
}

// UpsertBatch upserts a slate of games in a single round trip
func (r *PostgresGameRepository) UpsertBatch(ctx context.Context, games []*models.GamePairing) error {
	if len(games) == 0 {
		return nil
	}

	query := `
		INSERT INTO games (game_id, game_date, home_team, away_team, home_pitcher, away_pitcher)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			home_pitcher = EXCLUDED.home_pitcher,
			away_pitcher = EXCLUDED.away_pitcher
	`

	batch := &pgx.Batch{}
	for _, g := range games {
		batch.Queue(query, g.GameID, g.Date, g.HomeTeam, g.AwayTeam, g.HomePitcher, g.AwayPitcher)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range games {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert game batch: %w", err)
		}
	}

	return nil
}

// GetByDate retrieves all games scheduled on a calendar date
func (r *PostgresGameRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.GamePairing, error) {
	query := `
		SELECT game_id, game_date, home_team, away_team, home_pitcher, away_pitcher
		FROM games
		WHERE game_date = $1
		ORDER BY game_id ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query games by date: %w", err)
	}
	defer rows.Close()

	var games []*models.GamePairing
	for rows.Next() {
		game := &models.GamePairing{}
		err := rows.Scan(
			&game.GameID, &game.Date, &game.HomeTeam, &game.AwayTeam,
			&game.HomePitcher, &game.AwayPitcher,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanGame, err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}

// GetByID retrieves a single game pairing
func (r *PostgresGameRepository) GetByID(ctx context.Context, gameID int64) (*models.GamePairing, error) {
	query := `
		SELECT game_id, game_date, home_team, away_team, home_pitcher, away_pitcher
		FROM games WHERE game_id = $1
	`

	game := &models.GamePairing{}
	err := r.db.GetPool().QueryRow(ctx, query, gameID).Scan(
		&game.GameID, &game.Date, &game.HomeTeam, &game.AwayTeam,
		&game.HomePitcher, &game.AwayPitcher,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}
