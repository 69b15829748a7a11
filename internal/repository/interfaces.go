package repository

import (
	"context"
	"time"

	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// GameRepository defines the interface for game-pairing data access
type GameRepository interface {
	Upsert(ctx context.Context, game *models.GamePairing) error
	UpsertBatch(ctx context.Context, games []*models.GamePairing) error
	GetByDate(ctx context.Context, date time.Time) ([]*models.GamePairing, error)
	GetByID(ctx context.Context, gameID int64) (*models.GamePairing, error)
}

// PitcherFactRepository defines the interface for pitcher inning-fact access
type PitcherFactRepository interface {
	InsertBatch(ctx context.Context, rows []*models.PitcherFactRow) error
	GetHistory(ctx context.Context, pitcherName string, inning int, before time.Time) ([]models.PitcherFactRow, error)
	GetForGame(ctx context.Context, gameID int64, pitcherName string, inning int) (*models.PitcherFactRow, error)
}

// BattingFactRepository defines the interface for team batting inning-fact access
type BattingFactRepository interface {
	InsertBatch(ctx context.Context, rows []*models.BattingFactRow) error
	GetHistory(ctx context.Context, teamID string, inning int, before time.Time) ([]models.BattingFactRow, error)
	GetForGame(ctx context.Context, gameID int64, teamID string, inning int) (*models.BattingFactRow, error)
}
