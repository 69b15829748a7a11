package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/Karun12234/mlb-inning-report/internal/datasource"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// DataNormalizer normalizes provider data to the internal format
type DataNormalizer struct {
	teamAbbrevMap map[string]string // Maps provider team names to abbreviations
	names         *NameFormatter
	logger        *log.Logger
}

// NewDataNormalizer creates a new data normalizer
func NewDataNormalizer(names *NameFormatter, logger *log.Logger) *DataNormalizer {
	return &DataNormalizer{
		teamAbbrevMap: buildTeamAbbrevMap(),
		names:         names,
		logger:        logger,
	}
}

// NormalizeGame converts schedule data to the internal game pairing. Pitcher
// names come back in "Last, First" form so report rows and fact rows always
// join on the same key.
func (n *DataNormalizer) NormalizeGame(sourceGame *datasource.GameData) (*models.GamePairing, error) {
	if sourceGame == nil {
		return nil, fmt.Errorf("source game is nil")
	}

	game := &models.GamePairing{
		GameID:   sourceGame.GameID,
		Date:     sourceGame.Date,
		HomeTeam: n.NormalizeTeam(sourceGame.HomeTeam),
		AwayTeam: n.NormalizeTeam(sourceGame.AwayTeam),
	}
	if game.HomeTeam == "" || game.AwayTeam == "" {
		return nil, fmt.Errorf("unknown team in game %d (%q vs %q): %w",
			sourceGame.GameID, sourceGame.AwayTeam, sourceGame.HomeTeam, models.ErrUnknownTeam)
	}

	if p := sourceGame.HomePitcher; p != nil {
		name := n.names.LastFirst(p.Name)
		game.HomePitcher = &name
	}
	if p := sourceGame.AwayPitcher; p != nil {
		name := n.names.LastFirst(p.Name)
		game.AwayPitcher = &name
	}

	return game, nil
}

// NormalizePitchingLine converts one provider pitching line to a fact row
func (n *DataNormalizer) NormalizePitchingLine(game *datasource.GameInnings, line *datasource.PitchingLine) *models.PitcherFactRow {
	return &models.PitcherFactRow{
		Date:              game.Date,
		GameID:            game.GameID,
		Inning:            line.Inning,
		PitcherID:         line.PitcherID,
		PitcherName:       n.names.LastFirst(line.PitcherName),
		TeamID:            n.NormalizeTeam(line.TeamID),
		OpponentTeamID:    n.NormalizeTeam(line.OpponentTeamID),
		IsHomePitcher:     line.IsHome,
		Strikeouts:        line.Strikeouts,
		RunsAllowed:       line.Runs,
		BattersFaced:      line.BattersFaced,
		HitsAllowed:       line.Hits,
		SinglesAllowed:    line.Singles,
		DoublesAllowed:    line.Doubles,
		TriplesAllowed:    line.Triples,
		HomersAllowed:     line.Homers,
		TotalBasesAllowed: line.TotalBases,
		WalksAllowed:      line.Walks,
	}
}

// NormalizeBattingLine converts one provider batting line to a fact row
func (n *DataNormalizer) NormalizeBattingLine(game *datasource.GameInnings, line *datasource.BattingLine) *models.BattingFactRow {
	return &models.BattingFactRow{
		Date:           game.Date,
		GameID:         game.GameID,
		Inning:         line.Inning,
		TeamID:         n.NormalizeTeam(line.TeamID),
		OpponentTeamID: n.NormalizeTeam(line.OpponentTeamID),
		IsHomeTeam:     line.IsHome,
		Strikeouts:     line.Strikeouts,
		RunsScored:     line.Runs,
		BattersToPlate: line.BattersToPlate,
		Hits:           line.Hits,
		Singles:        line.Singles,
		Doubles:        line.Doubles,
		Triples:        line.Triples,
		Homers:         line.Homers,
		TotalBases:     line.TotalBases,
		Walks:          line.Walks,
	}
}

// NormalizeTeam converts a provider team name or abbreviation to the
// canonical abbreviation. Already-canonical abbreviations pass through.
func (n *DataNormalizer) NormalizeTeam(team string) string {
	if team == "" {
		return ""
	}

	trimmed := strings.TrimSpace(team)
	if abbrev, ok := n.teamAbbrevMap[strings.ToUpper(trimmed)]; ok {
		return abbrev
	}

	// Abbreviations map to themselves
	upper := strings.ToUpper(trimmed)
	for _, abbrev := range n.teamAbbrevMap {
		if abbrev == upper {
			return abbrev
		}
	}

	if n.logger != nil {
		n.logger.Printf("Warning: unknown team %q", team)
	}
	return ""
}

// buildTeamAbbrevMap returns mapping of team name variations to abbreviations
func buildTeamAbbrevMap() map[string]string {
	return map[string]string{
		"ARIZONA DIAMONDBACKS":  "AZ",
		"ATLANTA BRAVES":        "ATL",
		"BALTIMORE ORIOLES":     "BAL",
		"BOSTON RED SOX":        "BOS",
		"CHICAGO CUBS":          "CHC",
		"CHICAGO WHITE SOX":     "CWS",
		"CINCINNATI REDS":       "CIN",
		"CLEVELAND GUARDIANS":   "CLE",
		"COLORADO ROCKIES":      "COL",
		"DETROIT TIGERS":        "DET",
		"HOUSTON ASTROS":        "HOU",
		"KANSAS CITY ROYALS":    "KC",
		"LOS ANGELES ANGELS":    "LAA",
		"LOS ANGELES DODGERS":   "LAD",
		"MIAMI MARLINS":         "MIA",
		"MILWAUKEE BREWERS":     "MIL",
		"MINNESOTA TWINS":       "MIN",
		"NEW YORK METS":         "NYM",
		"NEW YORK YANKEES":      "NYY",
		"OAKLAND ATHLETICS":     "OAK",
		"ATHLETICS":             "ATH",
		"PHILADELPHIA PHILLIES": "PHI",
		"PITTSBURGH PIRATES":    "PIT",
		"SAN DIEGO PADRES":      "SD",
		"SAN FRANCISCO GIANTS":  "SF",
		"SEATTLE MARINERS":      "SEA",
		"ST. LOUIS CARDINALS":   "STL",
		"TAMPA BAY RAYS":        "TB",
		"TEXAS RANGERS":         "TEX",
		"TORONTO BLUE JAYS":     "TOR",
		"WASHINGTON NATIONALS":  "WSH",
	}
}
