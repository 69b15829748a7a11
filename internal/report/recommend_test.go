package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karun12234/mlb-inning-report/internal/models"
)

func TestKBet(t *testing.T) {
	tests := []struct {
		name                  string
		venuePct, overallPct  float64
		conf                  models.Confidence
		want                  models.Bet
	}{
		{"both splits at the gate", 80, 80, models.ConfidenceHigh, models.BetKHighOver},
		{"venue split alone", 85, 60, models.ConfidenceModerate, models.BetKOver},
		{"overall split alone", 60, 85, models.ConfidenceModerate, models.BetKOver},
		{"low confidence backs the under", 40, 40, models.ConfidenceLow, models.BetKUnder},
		{"moderate with cool splits stays neutral", 40, 40, models.ConfidenceModerate, models.BetNeutral},
		{"high with cool splits stays neutral", 40, 40, models.ConfidenceHigh, models.BetNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KBet(tt.venuePct, tt.overallPct, tt.conf))
		})
	}
}

func TestRunsBet(t *testing.T) {
	assert.Equal(t, models.Bet("Under Runs Bet"), RunsBet(models.CompositeHighNRFI))
	assert.Equal(t, models.Bet("Over Runs Bet"), RunsBet(models.CompositeHighYRFI))
	assert.Equal(t, models.BetNeutral, RunsBet(models.CompositeModerateNRFI))
	assert.Equal(t, models.BetNeutral, RunsBet(models.CompositeLow))
}

func TestOverUnderBet(t *testing.T) {
	assert.Equal(t, models.Bet("Under Walks Bet"), OverUnderBet(models.StatWalks, models.CompositeHighUnder))
	assert.Equal(t, models.Bet("Over Total Bases Bet"), OverUnderBet(models.StatTotalBases, models.CompositeHighOverLabel))
	// Moderate leaners never actionate.
	assert.Equal(t, models.BetNeutral, OverUnderBet(models.StatWalks, models.CompositeModerateUnder))
	assert.Equal(t, models.BetNeutral, OverUnderBet(models.StatWalks, models.CompositeNeutral))
}

// pickRow builds a minimal graded row for recommendation tests. Stats not
// named default to zero aggregates and Neutral grades.
func pickRow(game, pitcher, opponent string) Row {
	return Row{
		Game:          game,
		Pitcher:       pitcher,
		Opponent:      opponent,
		PitcherStats:  make(map[models.Stat]Aggregate),
		OpponentStats: make(map[models.Stat]Aggregate),
		PitcherConf:   make(map[models.Stat]models.Confidence),
		OpponentConf:  make(map[models.Stat]models.Confidence),
		Overall:       make(map[models.Stat]models.Composite),
		PitcherBet:    make(map[models.Stat]models.Bet),
		OpponentBet:   make(map[models.Stat]models.Bet),
	}
}

func TestRecommendationsStrikeoutOrdering(t *testing.T) {
	low := pickRow("BOS @ NYY", "Gerrit Cole", "BOS")
	low.Overall[models.StatStrikeouts] = models.CompositeLow
	low.PitcherStats[models.StatStrikeouts] = Aggregate{PositivePct: 90}

	highSlow := pickRow("SD @ LAD", "Yu Darvish", "LAD")
	highSlow.Overall[models.StatStrikeouts] = models.CompositeHigh
	highSlow.PitcherStats[models.StatStrikeouts] = Aggregate{PositivePct: 70}

	highFast := pickRow("CHC @ STL", "Justin Steele", "STL")
	highFast.Overall[models.StatStrikeouts] = models.CompositeHigh
	highFast.PitcherStats[models.StatStrikeouts] = Aggregate{PositivePct: 85}

	picks := Recommendations(Table{low, highSlow, highFast})["Strikeouts"]
	require.Len(t, picks, 3)
	// Grade weight first, then occurrence percentage descending within a
	// grade.
	assert.Equal(t, "Justin Steele", picks[0].Pitcher)
	assert.Equal(t, "Yu Darvish", picks[1].Pitcher)
	assert.Equal(t, "Gerrit Cole", picks[2].Pitcher)
	assert.Equal(t, 85.0, picks[0].PitcherValue)
}

func TestRecommendationsCapsAtFourPicks(t *testing.T) {
	table := make(Table, 0, 6)
	for _, p := range []string{"A", "B", "C", "D", "E", "F"} {
		r := pickRow("X @ Y", p, "Y")
		r.Overall[models.StatStrikeouts] = models.CompositeModerate
		table = append(table, r)
	}
	picks := Recommendations(table)["Strikeouts"]
	assert.Len(t, picks, 4)
	// Equal grades keep schedule order.
	assert.Equal(t, "A", picks[0].Pitcher)
	assert.Equal(t, "D", picks[3].Pitcher)
}

func TestRecommendationsNRFIAndYRFI(t *testing.T) {
	nrfi := pickRow("BOS @ NYY", "Gerrit Cole", "BOS")
	nrfi.Overall[models.StatRuns] = models.CompositeHighNRFI
	nrfi.PitcherStats[models.StatRuns] = Aggregate{VenueZeroPct: 85}

	yrfi := pickRow("COL @ ARI", "Kyle Freeland", "ARI")
	yrfi.Overall[models.StatRuns] = models.CompositeModerateYRFI
	yrfi.PitcherStats[models.StatRuns] = Aggregate{VenueZeroPct: 30}

	neutral := pickRow("SEA @ TEX", "Luis Castillo", "TEX")
	neutral.Overall[models.StatRuns] = models.CompositeLow

	out := Recommendations(Table{nrfi, yrfi, neutral})

	// NRFI ranks the whole slate; the High (NRFI) row leads on weight.
	require.Len(t, out["NRFI"], 3)
	assert.Equal(t, "Gerrit Cole", out["NRFI"][0].Pitcher)
	assert.Equal(t, string(models.CompositeHighNRFI), out["NRFI"][0].Label)

	// YRFI keeps only the YRFI-graded rows.
	require.Len(t, out["YRFI"], 1)
	assert.Equal(t, "Kyle Freeland", out["YRFI"][0].Pitcher)
}

func TestRecommendationsRunPrevention(t *testing.T) {
	strong := pickRow("BOS @ NYY", "Gerrit Cole", "BOS")
	strong.RunPrevention = models.ConfidenceHigh
	strong.PitcherStats[models.StatRuns] = Aggregate{PositivePct: 20}
	strong.OpponentStats[models.StatRuns] = Aggregate{Average: 0.3}

	weaker := pickRow("SD @ LAD", "Yu Darvish", "LAD")
	weaker.RunPrevention = models.ConfidenceHigh
	weaker.PitcherStats[models.StatRuns] = Aggregate{PositivePct: 25}

	moderate := pickRow("CHC @ STL", "Justin Steele", "STL")
	moderate.RunPrevention = models.ConfidenceModerate
	moderate.PitcherStats[models.StatRuns] = Aggregate{PositivePct: 10}

	picks := Recommendations(Table{weaker, moderate, strong})["Run Prevention"]
	require.Len(t, picks, 3)
	// High first, and within the grade the lower runs-allowed pct wins.
	assert.Equal(t, "Gerrit Cole", picks[0].Pitcher)
	assert.Equal(t, "Yu Darvish", picks[1].Pitcher)
	assert.Equal(t, "Justin Steele", picks[2].Pitcher)
}

func TestRecommendationsHitsKeepsModerateLeaners(t *testing.T) {
	high := pickRow("BOS @ NYY", "Gerrit Cole", "BOS")
	high.Overall[models.StatHits] = models.CompositeHighUnder
	high.PitcherStats[models.StatHits] = Aggregate{ZeroPct: 80}

	lean := pickRow("SD @ LAD", "Yu Darvish", "LAD")
	lean.Overall[models.StatHits] = models.CompositeModerateUnder
	lean.PitcherStats[models.StatHits] = Aggregate{ZeroPct: 65}

	over := pickRow("COL @ ARI", "Kyle Freeland", "ARI")
	over.Overall[models.StatHits] = models.CompositeHighOverLabel

	out := Recommendations(Table{lean, high, over})
	require.Len(t, out["Hits Under"], 2)
	assert.Equal(t, "Gerrit Cole", out["Hits Under"][0].Pitcher)
	assert.Equal(t, "Yu Darvish", out["Hits Under"][1].Pitcher)
	require.Len(t, out["Hits Over"], 1)
	assert.Equal(t, "Kyle Freeland", out["Hits Over"][0].Pitcher)
}

func TestRecommendationsStatUnderTiebreaks(t *testing.T) {
	stingy := pickRow("BOS @ NYY", "Gerrit Cole", "BOS")
	stingy.Overall[models.StatWalks] = models.CompositeHighUnder
	stingy.PitcherStats[models.StatWalks] = Aggregate{Average: 0.2}

	leaky := pickRow("SD @ LAD", "Yu Darvish", "LAD")
	leaky.Overall[models.StatWalks] = models.CompositeHighUnder
	leaky.PitcherStats[models.StatWalks] = Aggregate{Average: 0.6}

	moderate := pickRow("CHC @ STL", "Justin Steele", "STL")
	moderate.Overall[models.StatWalks] = models.CompositeModerateUnder

	out := Recommendations(Table{leaky, stingy, moderate})
	picks := out["Walks Under"]
	// Only the exact High grade qualifies; the stingier average leads.
	require.Len(t, picks, 2)
	assert.Equal(t, "Gerrit Cole", picks[0].Pitcher)
	assert.Equal(t, "Yu Darvish", picks[1].Pitcher)
}

func TestRecommendationsEmptyTable(t *testing.T) {
	out := Recommendations(Table{})
	for name, picks := range out {
		assert.NotNil(t, picks, "category %s should return an empty slice, not nil", name)
		assert.Empty(t, picks)
	}
	// Every fixed category plus Under/Over per over/under stat.
	assert.Contains(t, out, "Strikeouts")
	assert.Contains(t, out, "Run Prevention")
	assert.Contains(t, out, "NRFI")
	assert.Contains(t, out, "YRFI")
	assert.Contains(t, out, "Hits Under")
	assert.Contains(t, out, "Total Bases Over")
	assert.Contains(t, out, "Singles Under")
}
