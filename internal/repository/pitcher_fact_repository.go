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

const pitcherFactColumns = `
	game_date, game_id, inning, pitcher_id, pitcher_name, team_id,
	opponent_team_id, is_home_pitcher, strikeouts, runs_allowed, batters_faced,
	hits_allowed, singles_allowed, doubles_allowed, triples_allowed,
	homers_allowed, total_bases_allowed, walks_allowed`

// PostgresPitcherFactRepository implements PitcherFactRepository for PostgreSQL
type PostgresPitcherFactRepository struct {
	db *database.DB
}

// NewPostgresPitcherFactRepository creates a new pitcher fact repository
func NewPostgresPitcherFactRepository(db *database.DB) PitcherFactRepository {
	return &PostgresPitcherFactRepository{db: db}
}

// InsertBatch upserts pitcher fact rows in a single round trip. Ingestion
// re-runs the same dates, so conflicts overwrite rather than error.
func (r *PostgresPitcherFactRepository) InsertBatch(ctx context.Context, facts []*models.PitcherFactRow) error {
	if len(facts) == 0 {
		return nil
	}

	query := `
		INSERT INTO pitcher_inning_facts (` + pitcherFactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (game_id, pitcher_name, inning) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			pitcher_id = EXCLUDED.pitcher_id,
			team_id = EXCLUDED.team_id,
			opponent_team_id = EXCLUDED.opponent_team_id,
			is_home_pitcher = EXCLUDED.is_home_pitcher,
			strikeouts = EXCLUDED.strikeouts,
			runs_allowed = EXCLUDED.runs_allowed,
			batters_faced = EXCLUDED.batters_faced,
			hits_allowed = EXCLUDED.hits_allowed,
			singles_allowed = EXCLUDED.singles_allowed,
			doubles_allowed = EXCLUDED.doubles_allowed,
			triples_allowed = EXCLUDED.triples_allowed,
			homers_allowed = EXCLUDED.homers_allowed,
			total_bases_allowed = EXCLUDED.total_bases_allowed,
			walks_allowed = EXCLUDED.walks_allowed
	`

	batch := &pgx.Batch{}
	for _, f := range facts {
		batch.Queue(query,
			f.Date, f.GameID, f.Inning, f.PitcherID, f.PitcherName, f.TeamID,
			f.OpponentTeamID, f.IsHomePitcher, f.Strikeouts, f.RunsAllowed,
			f.BattersFaced, f.HitsAllowed, f.SinglesAllowed, f.DoublesAllowed,
			f.TriplesAllowed, f.HomersAllowed, f.TotalBasesAllowed, f.WalksAllowed,
		)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range facts {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert pitcher facts: %w", err)
		}
	}

	return nil
}

// GetHistory retrieves a pitcher's inning rows strictly before a date,
// most recent first
func (r *PostgresPitcherFactRepository) GetHistory(ctx context.Context, pitcherName string, inning int, before time.Time) ([]models.PitcherFactRow, error) {
	query := `
		SELECT ` + pitcherFactColumns + `
		FROM pitcher_inning_facts
		WHERE pitcher_name = $1 AND inning = $2 AND game_date < $3
		ORDER BY game_date DESC, game_id DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, pitcherName, inning, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query pitcher history: %w", err)
	}
	defer rows.Close()

	var facts []models.PitcherFactRow
	for rows.Next() {
		var f models.PitcherFactRow
		if err := scanPitcherFact(rows, &f); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}

	return facts, rows.Err()
}

// GetForGame retrieves the pitcher's row for one specific game, if ingested
func (r *PostgresPitcherFactRepository) GetForGame(ctx context.Context, gameID int64, pitcherName string, inning int) (*models.PitcherFactRow, error) {
	query := `
		SELECT ` + pitcherFactColumns + `
		FROM pitcher_inning_facts
		WHERE game_id = $1 AND pitcher_name = $2 AND inning = $3
	`

	f := &models.PitcherFactRow{}
	err := scanPitcherFact(r.db.GetPool().QueryRow(ctx, query, gameID, pitcherName, inning), f)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

func scanPitcherFact(row pgx.Row, f *models.PitcherFactRow) error {
	err := row.Scan(
		&f.Date, &f.GameID, &f.Inning, &f.PitcherID, &f.PitcherName, &f.TeamID,
		&f.OpponentTeamID, &f.IsHomePitcher, &f.Strikeouts, &f.RunsAllowed,
		&f.BattersFaced, &f.HitsAllowed, &f.SinglesAllowed, &f.DoublesAllowed,
		&f.TriplesAllowed, &f.HomersAllowed, &f.TotalBasesAllowed, &f.WalksAllowed,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan pitcher fact: %w", err)
	}
	return nil
}
