// Package catalog declares every tracked per-inning statistic: which derived
// report values exist for each stat on each side, how rate denominators are
// chosen, and the confidence thresholds each stat classifies against. Pure
// configuration; the report engine owns all behavior.
package catalog

import (
	"fmt"

	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// Side distinguishes the pitching view from the batting-team view of a stat.
type Side int

const (
	SidePitcher Side = iota
	SideBatting
)

// ValueKind names which derived aggregate value a report key reads.
type ValueKind int

const (
	// KindAverage is the per-game average over all qualifying games.
	KindAverage ValueKind = iota
	// KindRate is numerator/denominator x 100 summed across games, with the
	// denominator taken from RateDenominator (batters faced / to plate).
	KindRate
	// KindZeroPct is the percent of games where the count was exactly zero
	// (NRFI, NRHI).
	KindZeroPct
	// KindPositivePct is the percent of games with at least one occurrence.
	KindPositivePct
	// Venue variants restrict to games at the current game's home/away role.
	KindVenueAverage
	KindVenueZeroPct
	KindVenuePositivePct
)

// ReportKey binds one report column name to the aggregate value it exposes.
type ReportKey struct {
	Key  string
	Kind ValueKind
}

// MetricDefinition declares the full derived-value surface of one stat on one
// side. Empty LastGameKey/TodayKey means that column is not produced.
type MetricDefinition struct {
	Stat models.Stat
	Side Side
	Keys []ReportKey
	// RateDenominator names the summed denominator stat for KindRate keys.
	RateDenominator models.Stat
	LastGameKey     string
	TodayKey        string
}

// HasKind reports whether any report key of this definition reads the given
// aggregate value.
func (d MetricDefinition) HasKind(k ValueKind) bool {
	for _, rk := range d.Keys {
		if rk.Kind == k {
			return true
		}
	}
	return false
}

// PitcherMetrics returns the pitching-side catalog for one inning. The
// catalog is a pure function of the inning number; derived key names embed it
// so multi-inning reports never collide.
func PitcherMetrics(inning int) []MetricDefinition {
	return []MetricDefinition{
		{
			Stat: models.StatStrikeouts,
			Side: SidePitcher,
			Keys: []ReportKey{
				// "RATE" is historical naming; both keys are occurrence
				// percentages, games with at least one strikeout over games.
				{Key: "PITCH K OVERALL RATE %", Kind: KindPositivePct},
				{Key: "VENUE PITCH K RATE %", Kind: KindVenuePositivePct},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER STRIKEOUTS INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER STRIKEOUTS INNING %d", inning),
		},
		{
			Stat: models.StatRuns,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH RUNS ALLOWED/GM", Kind: KindAverage},
				{Key: "PITCH RUNS ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: fmt.Sprintf("PITCH NRFI %% INNING %d", inning), Kind: KindZeroPct},
				{Key: fmt.Sprintf("PITCHER VENUE NRFI %% INNING %d", inning), Kind: KindVenueZeroPct},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER RUNS ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER RUNS ALLOWED INNING %d", inning),
		},
		{
			Stat: models.StatHits,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH HIT AVG #", Kind: KindAverage},
				{Key: fmt.Sprintf("PITCH NRHI %% INNING %d", inning), Kind: KindZeroPct},
				{Key: fmt.Sprintf("PITCHER VENUE NRHI %% INNING %d", inning), Kind: KindVenueZeroPct},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER HITS ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER HITS INNING %d", inning),
		},
		{
			Stat: models.StatSingles,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH SINGLES ALLOWED/GM", Kind: KindAverage},
				{Key: "PITCH SINGLES ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: "VENUE PITCH SINGLES ALLOWED/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER SINGLES ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER SINGLES INNING %d", inning),
		},
		{
			Stat: models.StatDoubles,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH DOUBLES ALLOWED/GM", Kind: KindAverage},
				{Key: "PITCH DOUBLES ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: "VENUE PITCH DOUBLES ALLOWED/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER DOUBLES ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER DOUBLES INNING %d", inning),
		},
		{
			Stat: models.StatTriples,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH TRIPLES ALLOWED/GM", Kind: KindAverage},
				{Key: "PITCH TRIPLES ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: "VENUE PITCH TRIPLES ALLOWED/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER TRIPLES ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER TRIPLES INNING %d", inning),
		},
		{
			Stat: models.StatHomers,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH HOMERS ALLOWED/GM", Kind: KindAverage},
				{Key: "PITCH HOMERS ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: "VENUE PITCH HOMERS ALLOWED/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER HOMERS ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER HOMERS INNING %d", inning),
		},
		{
			Stat: models.StatTotalBases,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH TOTAL BASES ALLOWED/GM", Kind: KindAverage},
				{Key: "PITCH TOTAL BASES ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: "VENUE PITCH TOTAL BASES ALLOWED/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME PITCHER TOTAL BASES ALLOWED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY PITCHER TOTAL BASES INNING %d", inning),
		},
		{
			Stat: models.StatWalks,
			Side: SidePitcher,
			Keys: []ReportKey{
				{Key: "PITCH WALKS ALLOWED PER GAME %", Kind: KindPositivePct},
				{Key: "PITCH WALKS ALLOWED RATE %", Kind: KindRate},
				{Key: "VENUE PITCH WALKS ALLOWED/GM", Kind: KindVenueAverage},
			},
			RateDenominator: models.StatBattersFaced,
			LastGameKey:     fmt.Sprintf("LAST GAME PITCHER WALKS ALLOWED INNING %d", inning),
			TodayKey:        fmt.Sprintf("TODAY PITCHER WALKS INNING %d", inning),
		},
	}
}

// BattingMetrics returns the batting-team catalog for one inning.
func BattingMetrics(inning int) []MetricDefinition {
	return []MetricDefinition{
		{
			Stat: models.StatStrikeouts,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP K OVERALL RATE %", Kind: KindPositivePct},
				{Key: "VENUE OPP K RATE %", Kind: KindVenuePositivePct},
				{Key: "OPP K/GM", Kind: KindAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT STRIKEOUTS BATTING INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT STRIKEOUTS INNING %d", inning),
		},
		{
			Stat: models.StatRuns,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP R/G", Kind: KindAverage},
				{Key: fmt.Sprintf("BAT NRFI %% INNING %d", inning), Kind: KindZeroPct},
				{Key: fmt.Sprintf("OPPONENT VENUE NRFI %% INNING %d", inning), Kind: KindVenueZeroPct},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT RUNS SCORED INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT RUNS SCORED INNING %d", inning),
		},
		{
			Stat: models.StatHits,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "BAT HIT AVG #", Kind: KindAverage},
				{Key: "BAT HIT AVG", Kind: KindRate},
				{Key: fmt.Sprintf("BAT NRHI %% INNING %d", inning), Kind: KindZeroPct},
				{Key: fmt.Sprintf("BATTER VENUE NRHI %% INNING %d", inning), Kind: KindVenueZeroPct},
			},
			RateDenominator: models.StatBattersToPlate,
			LastGameKey:     fmt.Sprintf("LAST GAME OPPONENT HITS BATTING INNING %d", inning),
			TodayKey:        fmt.Sprintf("TODAY OPPONENT HITS INNING %d", inning),
		},
		{
			Stat: models.StatSingles,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP SINGLES BATTING/GM", Kind: KindAverage},
				{Key: "VENUE BAT SINGLES BATTING/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT SINGLES BATTING INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT SINGLES INNING %d", inning),
		},
		{
			Stat: models.StatDoubles,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP DOUBLES BATTING/GM", Kind: KindAverage},
				{Key: "VENUE BAT DOUBLES BATTING/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT DOUBLES BATTING INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT DOUBLES INNING %d", inning),
		},
		{
			Stat: models.StatTriples,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP TRIPLES BATTING/GM", Kind: KindAverage},
				{Key: "VENUE BAT TRIPLES BATTING/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT TRIPLES BATTING INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT TRIPLES INNING %d", inning),
		},
		{
			Stat: models.StatHomers,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP HOMERS BATTING/GM", Kind: KindAverage},
				{Key: "VENUE BAT HOMERS BATTING/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT HOMERS BATTING INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT HOMERS INNING %d", inning),
		},
		{
			Stat: models.StatTotalBases,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP TOTAL BASES BATTING/GM", Kind: KindAverage},
				{Key: "VENUE BAT TOTAL BASES BATTING/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT TOTAL BASES BATTING INNING %d", inning),
			TodayKey:    fmt.Sprintf("TODAY OPPONENT TOTAL BASES INNING %d", inning),
		},
		{
			Stat: models.StatWalks,
			Side: SideBatting,
			Keys: []ReportKey{
				{Key: "OPP WALKS BATTING/GM", Kind: KindAverage},
				{Key: "VENUE BAT WALKS BATTING/GM", Kind: KindVenueAverage},
			},
			LastGameKey: fmt.Sprintf("LAST GAME OPPONENT WALKS BATTING INNING %d", inning),
		},
	}
}

// Find returns the definition for a stat within one catalog slice.
func Find(defs []MetricDefinition, s models.Stat) (MetricDefinition, bool) {
	for _, d := range defs {
		if d.Stat == s {
			return d, true
		}
	}
	return MetricDefinition{}, false
}
