package datasource

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DataSource defines the interface for fetching game data from an external
// stats provider
type DataSource interface {
	// FetchSchedule retrieves the game slate for one calendar date, with
	// probable pitchers where published
	FetchSchedule(ctx context.Context, date time.Time) ([]GameData, error)

	// FetchGameInnings retrieves per-inning pitching and batting lines for a
	// completed game
	FetchGameInnings(ctx context.Context, gameID int64) (*GameInnings, error)

	// Name returns the name of the data source
	Name() string

	// IsEnabled returns whether this data source is currently enabled
	IsEnabled() bool
}

// GameData represents one scheduled game as normalized from the provider
type GameData struct {
	GameID      int64     `json:"game_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	HomeTeam    string    `json:"home_team"` // normalized abbreviation
	AwayTeam    string    `json:"away_team"`
	HomePitcher *ProbablePitcher `json:"home_pitcher"`
	AwayPitcher *ProbablePitcher `json:"away_pitcher"`
}

// ProbablePitcher is a scheduled starter
type ProbablePitcher struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // "Last, First"
}

// GameInnings carries every per-inning line of one finished game
type GameInnings struct {
	GameID   int64         `json:"game_id"`
	Date     time.Time     `json:"date"`
	Pitching []PitchingLine `json:"pitching"`
	Batting  []BattingLine  `json:"batting"`
}

// PitchingLine is one pitcher's counts for one inning
type PitchingLine struct {
	Inning         int    `json:"inning"`
	PitcherID      int64  `json:"pitcher_id"`
	PitcherName    string `json:"pitcher_name"`
	TeamID         string `json:"team_id"`
	OpponentTeamID string `json:"opponent_team_id"`
	IsHome         bool   `json:"is_home"`
	// InningsPitched is the provider's fractional notation ("0.2", "1.0")
	// for the pitcher's work in this game, kept for span validation
	InningsPitched decimal.Decimal `json:"innings_pitched"`
	Strikeouts     int             `json:"strikeouts"`
	Runs           int             `json:"runs"`
	BattersFaced   int             `json:"batters_faced"`
	Hits           int             `json:"hits"`
	Singles        int             `json:"singles"`
	Doubles        int             `json:"doubles"`
	Triples        int             `json:"triples"`
	Homers         int             `json:"homers"`
	TotalBases     int             `json:"total_bases"`
	Walks          int             `json:"walks"`
}

// BattingLine is one team's plate counts for one inning
type BattingLine struct {
	Inning         int    `json:"inning"`
	TeamID         string `json:"team_id"`
	OpponentTeamID string `json:"opponent_team_id"`
	IsHome         bool   `json:"is_home"`
	Strikeouts     int    `json:"strikeouts"`
	Runs           int    `json:"runs"`
	BattersToPlate int    `json:"batters_to_plate"`
	Hits           int    `json:"hits"`
	Singles        int    `json:"singles"`
	Doubles        int    `json:"doubles"`
	Triples        int    `json:"triples"`
	Homers         int    `json:"homers"`
	TotalBases     int    `json:"total_bases"`
	Walks          int    `json:"walks"`
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidData       = "invalid_data"
	ErrCodeNetworkError      = "network_error"
	ErrCodeServerError       = "server_error"
	ErrCodeUnknown           = "unknown"
)

// Error constructors
var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrNotFound          = errors.New("data not found")
	ErrInvalidData       = errors.New("invalid data format")
	ErrNetworkError      = errors.New("network error")
	ErrServerError       = errors.New("server error")
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
