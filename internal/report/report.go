// Package report implements the metric aggregation, confidence
// classification, recommendation and parlay-ranking engine. One
// (report date, inning) request is processed start to finish over immutable
// inputs; every stage produces a new derived structure.
package report

import (
	"fmt"

	"github.com/Karun12234/mlb-inning-report/internal/catalog"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// Aggregate holds every derived value for one (entity, stat) pair. A zero
// Games count leaves all ratios at 0.0 by construction; there is no division
// path that can produce NaN.
type Aggregate struct {
	Games            int
	VenueGames       int
	Average          float64
	Rate             float64
	ZeroPct          float64
	PositivePct      float64
	VenueAverage     float64
	VenueZeroPct     float64
	VenuePositivePct float64
	LastGame         models.LastGameValue
	Today            int
}

// value resolves one catalog value kind against this aggregate.
func (a Aggregate) value(k catalog.ValueKind) float64 {
	switch k {
	case catalog.KindAverage:
		return a.Average
	case catalog.KindRate:
		return a.Rate
	case catalog.KindZeroPct:
		return a.ZeroPct
	case catalog.KindPositivePct:
		return a.PositivePct
	case catalog.KindVenueAverage:
		return a.VenueAverage
	case catalog.KindVenueZeroPct:
		return a.VenueZeroPct
	case catalog.KindVenuePositivePct:
		return a.VenuePositivePct
	}
	return 0
}

// Row is one fully-populated report line for a (game, pitcher) pair. All
// fields exist by construction; there is no defensive key pre-population
// anywhere downstream.
type Row struct {
	GameID      int64
	Game        string
	Pitcher     string
	PitcherTeam string
	Opponent    string
	Inning      int
	// TotalStarts is the pitcher's distinct historical games in this inning;
	// OpponentGames is the batting team's.
	TotalStarts   int
	OpponentGames int

	PitcherStats  map[models.Stat]Aggregate
	OpponentStats map[models.Stat]Aggregate

	// Per-side ordinal confidences by stat.
	PitcherConf  map[models.Stat]models.Confidence
	OpponentConf map[models.Stat]models.Confidence

	// Run-prevention inputs and the composite signal itself.
	NRFIConf           models.Confidence
	RunsAllowedConf    models.Confidence
	OppRunsPerGameConf models.Confidence
	RunPrevention      models.Confidence

	// NRHI ladders, kept for report display alongside the hit-average confs.
	PitcherNRHIConf       models.Confidence
	PitcherVenueNRHIConf  models.Confidence
	OpponentNRHIConf      models.Confidence
	OpponentVenueNRHIConf models.Confidence

	// Overall composite label per stat, and the derived directional bets.
	Overall     map[models.Stat]models.Composite
	PitcherBet  map[models.Stat]models.Bet
	OpponentBet map[models.Stat]models.Bet
}

// Table is the full report for one (date, inning).
type Table []Row

// Columns renders the row as report-key/value pairs, every key namespaced by
// inning number the way the rendering collaborators expect. JSON encoding of
// the map sorts keys, so repeated generation is byte-identical.
func (r Row) Columns() map[string]any {
	out := map[string]any{
		"Game":         r.Game,
		"Pitcher":      r.Pitcher,
		"Pitcher Team": r.PitcherTeam,
		"Opponent":     r.Opponent,
		"Game ID":      r.GameID,
		fmt.Sprintf("# TOTAL STARTS INNING %d", r.Inning): r.TotalStarts,
	}

	appendSide := func(defs []catalog.MetricDefinition, stats map[models.Stat]Aggregate) {
		for _, def := range defs {
			agg := stats[def.Stat]
			for _, rk := range def.Keys {
				out[rk.Key] = agg.value(rk.Kind)
			}
			if def.LastGameKey != "" {
				out[def.LastGameKey] = agg.LastGame.String()
			}
			if def.TodayKey != "" {
				out[def.TodayKey] = agg.Today
			}
		}
	}
	appendSide(catalog.PitcherMetrics(r.Inning), r.PitcherStats)
	appendSide(catalog.BattingMetrics(r.Inning), r.OpponentStats)

	out["PITCH K CONF"] = string(r.PitcherConf[models.StatStrikeouts])
	out["OPP K CONF"] = string(r.OpponentConf[models.StatStrikeouts])
	out["Overall K CONFIDENCE"] = string(r.Overall[models.StatStrikeouts])
	out["PITCHER K BET"] = string(r.PitcherBet[models.StatStrikeouts])
	out["OPPONENT K BET"] = string(r.OpponentBet[models.StatStrikeouts])

	out["PITCH NRFI CONF"] = string(r.NRFIConf)
	out["PITCH RUNS ALLOWED CONF"] = string(r.RunsAllowedConf)
	out["OPP R/G CONF"] = string(r.OppRunsPerGameConf)
	out["Overall Run Prevention Confidence"] = string(r.RunPrevention)
	out["Overall CONFIDENCE FOR NRFI AND YRFI"] = string(r.Overall[models.StatRuns])
	out["PITCHER RUNS BET"] = string(r.PitcherBet[models.StatRuns])
	out["OPPONENT RUNS BET"] = string(r.OpponentBet[models.StatRuns])

	out["PITCH NRHI CONF"] = string(r.PitcherNRHIConf)
	out["PITCHER VENUE NRHI CONF"] = string(r.PitcherVenueNRHIConf)
	out["BAT NRHI CONF"] = string(r.OpponentNRHIConf)
	out["BATTER VENUE NRHI CONF"] = string(r.OpponentVenueNRHIConf)
	out["PITCH HITS ALLOWED CONF"] = string(r.PitcherConf[models.StatHits])
	out["OPP HITS BATTING CONF"] = string(r.OpponentConf[models.StatHits])
	out["Overall HITS CONFIDENCE"] = string(r.Overall[models.StatHits])
	out["PITCHER HITS BET"] = string(r.PitcherBet[models.StatHits])
	out["OPPONENT HITS BET"] = string(r.OpponentBet[models.StatHits])

	for _, s := range catalog.OverUnderStats {
		upper := confColumnName(s)
		out["PITCH "+upper+" ALLOWED CONF"] = string(r.PitcherConf[s])
		out["OPP "+upper+" BATTING CONF"] = string(r.OpponentConf[s])
		out["Overall "+upper+" CONFIDENCE"] = string(r.Overall[s])
		out["PITCHER "+upper+" BET"] = string(r.PitcherBet[s])
		out["OPPONENT "+upper+" BET"] = string(r.OpponentBet[s])
	}
	return out
}

func confColumnName(s models.Stat) string {
	switch s {
	case models.StatTotalBases:
		return "TOTAL BASES"
	case models.StatWalks:
		return "WALKS"
	case models.StatSingles:
		return "SINGLES"
	case models.StatDoubles:
		return "DOUBLES"
	case models.StatTriples:
		return "TRIPLES"
	case models.StatHomers:
		return "HOMERS"
	}
	return string(s)
}
