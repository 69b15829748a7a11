package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karun12234/mlb-inning-report/internal/models"
)

func TestPitcherMetricsCoversAllStats(t *testing.T) {
	defs := PitcherMetrics(1)
	require.Len(t, defs, len(models.AllStats))
	for _, s := range models.AllStats {
		def, ok := Find(defs, s)
		require.True(t, ok, "missing pitcher metric for %s", s)
		assert.Equal(t, SidePitcher, def.Side)
		assert.NotEmpty(t, def.Keys)
		assert.NotEmpty(t, def.LastGameKey)
		assert.NotEmpty(t, def.TodayKey)
	}
}

func TestBattingMetricsCoversAllStats(t *testing.T) {
	defs := BattingMetrics(1)
	require.Len(t, defs, len(models.AllStats))
	for _, s := range models.AllStats {
		def, ok := Find(defs, s)
		require.True(t, ok, "missing batting metric for %s", s)
		assert.Equal(t, SideBatting, def.Side)
		assert.NotEmpty(t, def.Keys)
	}
}

func TestMetricKeysEmbedInning(t *testing.T) {
	defs := PitcherMetrics(3)
	runs, ok := Find(defs, models.StatRuns)
	require.True(t, ok)

	keys := make([]string, 0, len(runs.Keys))
	for _, rk := range runs.Keys {
		keys = append(keys, rk.Key)
	}
	assert.Contains(t, keys, "PITCH NRFI % INNING 3")
	assert.Contains(t, keys, "PITCHER VENUE NRFI % INNING 3")
	assert.Equal(t, "LAST GAME PITCHER RUNS ALLOWED INNING 3", runs.LastGameKey)
	assert.Equal(t, "TODAY PITCHER RUNS ALLOWED INNING 3", runs.TodayKey)

	// Non-inning keys stay stable across innings.
	assert.Contains(t, keys, "PITCH RUNS ALLOWED/GM")
}

func TestRateDenominators(t *testing.T) {
	pw, ok := Find(PitcherMetrics(1), models.StatWalks)
	require.True(t, ok)
	assert.Equal(t, models.StatBattersFaced, pw.RateDenominator)

	bh, ok := Find(BattingMetrics(1), models.StatHits)
	require.True(t, ok)
	assert.Equal(t, models.StatBattersToPlate, bh.RateDenominator)

	// Strikeout columns are occurrence percentages despite the "RATE" in
	// their names, so no denominator applies.
	pk, ok := Find(PitcherMetrics(1), models.StatStrikeouts)
	require.True(t, ok)
	assert.Equal(t, models.Stat(""), pk.RateDenominator)
	assert.True(t, pk.HasKind(KindPositivePct))
	assert.False(t, pk.HasKind(KindRate))

	// Per-game stats carry no denominator.
	pr, ok := Find(PitcherMetrics(1), models.StatRuns)
	require.True(t, ok)
	assert.Equal(t, models.Stat(""), pr.RateDenominator)
}

func TestFindMissingStat(t *testing.T) {
	_, ok := Find(PitcherMetrics(1), models.Stat("bunts"))
	assert.False(t, ok)
}

func TestOverUnderStats(t *testing.T) {
	assert.Equal(t, []models.Stat{
		models.StatWalks, models.StatSingles, models.StatDoubles,
		models.StatTriples, models.StatHomers, models.StatTotalBases,
	}, OverUnderStats)
	// Hits and the composite-graded stats are handled by their own paths.
	assert.NotContains(t, OverUnderStats, models.StatHits)
	assert.NotContains(t, OverUnderStats, models.StatRuns)
	assert.NotContains(t, OverUnderStats, models.StatStrikeouts)
}

func TestRuleLookups(t *testing.T) {
	hits, ok := PitcherRule(models.StatHits)
	require.True(t, ok)
	assert.Equal(t, 0.5, hits.High)
	assert.Equal(t, 1.0, hits.Moderate)
	assert.Equal(t, LessIsBetter, hits.Direction)
	assert.Equal(t, SourceAverage, hits.Source)

	// The batting side of hits uses the inverted ladder on purpose.
	oppHits, ok := OpponentRule(models.StatHits)
	require.True(t, ok)
	assert.Equal(t, LessIsWorse, oppHits.Direction)

	walks, ok := PitcherRule(models.StatWalks)
	require.True(t, ok)
	assert.Equal(t, SourcePositivePct, walks.Source)

	_, ok = PitcherRule(models.StatRuns)
	assert.False(t, ok)
}

func TestEveryOverUnderStatHasRules(t *testing.T) {
	for _, s := range OverUnderStats {
		_, ok := PitcherRule(s)
		assert.True(t, ok, "missing pitcher rule for %s", s)
		_, ok = OpponentRule(s)
		assert.True(t, ok, "missing opponent rule for %s", s)
	}
}

func TestHasKind(t *testing.T) {
	runs, ok := Find(PitcherMetrics(1), models.StatRuns)
	require.True(t, ok)
	assert.True(t, runs.HasKind(KindZeroPct))
	assert.True(t, runs.HasKind(KindVenueZeroPct))
	assert.False(t, runs.HasKind(KindRate))
}
