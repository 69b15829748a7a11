package models

import (
	"time"
)

// Stat identifies one tracked per-inning statistic.
type Stat string

const (
	StatStrikeouts Stat = "strikeouts"
	StatRuns       Stat = "runs"
	StatHits       Stat = "hits"
	StatSingles    Stat = "singles"
	StatDoubles    Stat = "doubles"
	StatTriples    Stat = "triples"
	StatHomers     Stat = "homers"
	StatWalks      Stat = "walks"
	StatTotalBases Stat = "total_bases"

	// Denominator-only stats. Never reported directly; they feed rate
	// calculations (e.g. walk rate per batter faced).
	StatBattersFaced   Stat = "batters_faced"
	StatBattersToPlate Stat = "batters_to_plate"
)

// AllStats lists the reportable stats in catalog order.
var AllStats = []Stat{
	StatStrikeouts, StatRuns, StatHits, StatSingles, StatDoubles,
	StatTriples, StatHomers, StatWalks, StatTotalBases,
}

// DisplayName returns the stat name as it appears in category and bet labels.
func (s Stat) DisplayName() string {
	switch s {
	case StatStrikeouts:
		return "Strikeout"
	case StatRuns:
		return "Runs"
	case StatHits:
		return "Hits"
	case StatSingles:
		return "Singles"
	case StatDoubles:
		return "Doubles"
	case StatTriples:
		return "Triples"
	case StatHomers:
		return "Homers"
	case StatWalks:
		return "Walks"
	case StatTotalBases:
		return "Total Bases"
	}
	return string(s)
}

// PitcherFactRow is one pitcher's line for the target inning of one game.
// Rows are immutable once ingested; the ingestion service owns creation.
type PitcherFactRow struct {
	Date              time.Time `db:"game_date" json:"date"`
	GameID            int64     `db:"game_id" json:"game_id" validate:"required,gt=0"`
	Inning            int       `db:"inning" json:"inning" validate:"required,min=1,max=9"`
	PitcherID         int64     `db:"pitcher_id" json:"pitcher_id"`
	PitcherName       string    `db:"pitcher_name" json:"pitcher_name" validate:"required"`
	TeamID            string    `db:"team_id" json:"team_id" validate:"required"`
	OpponentTeamID    string    `db:"opponent_team_id" json:"opponent_team_id" validate:"required"`
	IsHomePitcher     bool      `db:"is_home_pitcher" json:"is_home_pitcher"`
	Strikeouts        int       `db:"strikeouts" json:"strikeouts"`
	RunsAllowed       int       `db:"runs_allowed" json:"runs_allowed"`
	BattersFaced      int       `db:"batters_faced" json:"batters_faced"`
	HitsAllowed       int       `db:"hits_allowed" json:"hits_allowed"`
	SinglesAllowed    int       `db:"singles_allowed" json:"singles_allowed"`
	DoublesAllowed    int       `db:"doubles_allowed" json:"doubles_allowed"`
	TriplesAllowed    int       `db:"triples_allowed" json:"triples_allowed"`
	HomersAllowed     int       `db:"homers_allowed" json:"homers_allowed"`
	TotalBasesAllowed int       `db:"total_bases_allowed" json:"total_bases_allowed"`
	WalksAllowed      int       `db:"walks_allowed" json:"walks_allowed"`
}

// Count returns the raw count for a stat on this row.
func (r *PitcherFactRow) Count(s Stat) int {
	switch s {
	case StatStrikeouts:
		return r.Strikeouts
	case StatRuns:
		return r.RunsAllowed
	case StatHits:
		return r.HitsAllowed
	case StatSingles:
		return r.SinglesAllowed
	case StatDoubles:
		return r.DoublesAllowed
	case StatTriples:
		return r.TriplesAllowed
	case StatHomers:
		return r.HomersAllowed
	case StatWalks:
		return r.WalksAllowed
	case StatTotalBases:
		return r.TotalBasesAllowed
	case StatBattersFaced:
		return r.BattersFaced
	}
	return 0
}

// BattingFactRow is the batting-team view of the same inning: what one team's
// lineup did while at the plate.
type BattingFactRow struct {
	Date           time.Time `db:"game_date" json:"date"`
	GameID         int64     `db:"game_id" json:"game_id" validate:"required,gt=0"`
	Inning         int       `db:"inning" json:"inning" validate:"required,min=1,max=9"`
	TeamID         string    `db:"team_id" json:"team_id" validate:"required"`
	OpponentTeamID string    `db:"opponent_team_id" json:"opponent_team_id" validate:"required"`
	IsHomeTeam     bool      `db:"is_home_team" json:"is_home_team"`
	Strikeouts     int       `db:"strikeouts" json:"strikeouts"`
	RunsScored     int       `db:"runs_scored" json:"runs_scored"`
	BattersToPlate int       `db:"batters_to_plate" json:"batters_to_plate"`
	Hits           int       `db:"hits" json:"hits"`
	Singles        int       `db:"singles" json:"singles"`
	Doubles        int       `db:"doubles" json:"doubles"`
	Triples        int       `db:"triples" json:"triples"`
	Homers         int       `db:"homers" json:"homers"`
	TotalBases     int       `db:"total_bases" json:"total_bases"`
	Walks          int       `db:"walks" json:"walks"`
}

// Count returns the raw count for a stat on this row.
func (r *BattingFactRow) Count(s Stat) int {
	switch s {
	case StatStrikeouts:
		return r.Strikeouts
	case StatRuns:
		return r.RunsScored
	case StatHits:
		return r.Hits
	case StatSingles:
		return r.Singles
	case StatDoubles:
		return r.Doubles
	case StatTriples:
		return r.Triples
	case StatHomers:
		return r.Homers
	case StatWalks:
		return r.Walks
	case StatTotalBases:
		return r.TotalBases
	case StatBattersToPlate:
		return r.BattersToPlate
	}
	return 0
}

// GamePairing describes one scheduled game with its probable (or actual)
// starting pitchers. A nil pitcher name means the side is unknown and that
// side's report row is skipped.
type GamePairing struct {
	GameID      int64     `db:"game_id" json:"game_id" validate:"required,gt=0"`
	Date        time.Time `db:"game_date" json:"date"`
	HomeTeam    string    `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam    string    `db:"away_team" json:"away_team" validate:"required"`
	HomePitcher *string   `db:"home_pitcher" json:"home_pitcher"`
	AwayPitcher *string   `db:"away_pitcher" json:"away_pitcher"`
}

// Label returns the "AWY @ HOM" display string used in report rows and
// parlay descriptions.
func (g *GamePairing) Label() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}
