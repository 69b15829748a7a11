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

const battingFactColumns = `
	game_date, game_id, inning, team_id, opponent_team_id, is_home_team,
	strikeouts, runs_scored, batters_to_plate, hits, singles, doubles,
	triples, homers, total_bases, walks`

// PostgresBattingFactRepository implements BattingFactRepository for PostgreSQL
type PostgresBattingFactRepository struct {
	db *database.DB
}

// NewPostgresBattingFactRepository creates a new batting fact repository
func NewPostgresBattingFactRepository(db *database.DB) BattingFactRepository {
	return &PostgresBattingFactRepository{db: db}
}

// InsertBatch upserts batting fact rows in a single round trip
func (r *PostgresBattingFactRepository) InsertBatch(ctx context.Context, facts []*models.BattingFactRow) error {
	if len(facts) == 0 {
		return nil
	}

	query := `
		INSERT INTO batting_inning_facts (` + battingFactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (game_id, team_id, inning) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			opponent_team_id = EXCLUDED.opponent_team_id,
			is_home_team = EXCLUDED.is_home_team,
			strikeouts = EXCLUDED.strikeouts,
			runs_scored = EXCLUDED.runs_scored,
			batters_to_plate = EXCLUDED.batters_to_plate,
			hits = EXCLUDED.hits,
			singles = EXCLUDED.singles,
			doubles = EXCLUDED.doubles,
			triples = EXCLUDED.triples,
			homers = EXCLUDED.homers,
			total_bases = EXCLUDED.total_bases,
			walks = EXCLUDED.walks
	`

	batch := &pgx.Batch{}
	for _, f := range facts {
		batch.Queue(query,
			f.Date, f.GameID, f.Inning, f.TeamID, f.OpponentTeamID, f.IsHomeTeam,
			f.Strikeouts, f.RunsScored, f.BattersToPlate, f.Hits, f.Singles,
			f.Doubles, f.Triples, f.Homers, f.TotalBases, f.Walks,
		)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range facts {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert batting facts: %w", err)
		}
	}

	return nil
}

// GetHistory retrieves a team's batting rows strictly before a date,
// most recent first
func (r *PostgresBattingFactRepository) GetHistory(ctx context.Context, teamID string, inning int, before time.Time) ([]models.BattingFactRow, error) {
	query := `
		SELECT ` + battingFactColumns + `
		FROM batting_inning_facts
		WHERE team_id = $1 AND inning = $2 AND game_date < $3
		ORDER BY game_date DESC, game_id DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, teamID, inning, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query batting history: %w", err)
	}
	defer rows.Close()

	var facts []models.BattingFactRow
	for rows.Next() {
		var f models.BattingFactRow
		if err := scanBattingFact(rows, &f); err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}

	return facts, rows.Err()
}

// GetForGame retrieves the team's batting row for one specific game, if ingested
func (r *PostgresBattingFactRepository) GetForGame(ctx context.Context, gameID int64, teamID string, inning int) (*models.BattingFactRow, error) {
	query := `
		SELECT ` + battingFactColumns + `
		FROM batting_inning_facts
		WHERE game_id = $1 AND team_id = $2 AND inning = $3
	`

	f := &models.BattingFactRow{}
	err := scanBattingFact(r.db.GetPool().QueryRow(ctx, query, gameID, teamID, inning), f)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

func scanBattingFact(row pgx.Row, f *models.BattingFactRow) error {
	err := row.Scan(
		&f.Date, &f.GameID, &f.Inning, &f.TeamID, &f.OpponentTeamID,
		&f.IsHomeTeam, &f.Strikeouts, &f.RunsScored, &f.BattersToPlate,
		&f.Hits, &f.Singles, &f.Doubles, &f.Triples, &f.Homers,
		&f.TotalBases, &f.Walks,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan batting fact: %w", err)
	}
	return nil
}
