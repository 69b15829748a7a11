package report

import (
	"time"

	"github.com/Karun12234/mlb-inning-report/internal/catalog"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// obs is one historical observation flattened out of a fact row. Both row
// shapes reduce to the same aggregation problem.
type obs struct {
	date   time.Time
	gameID int64
	home   bool
	count  func(models.Stat) int
}

// AggregatePitcher computes every catalog value for one pitcher from their
// inning history. Only rows strictly before reportDate contribute; the
// pitcher's own game on the report date never leaks into its inputs.
// venueHome selects the venue split (true when tonight's start is at home).
// today, when non-nil, is the already-ingested row for the report date
// itself and feeds only the TODAY columns.
func AggregatePitcher(history []models.PitcherFactRow, inning int, reportDate time.Time, venueHome bool, today *models.PitcherFactRow) map[models.Stat]Aggregate {
	rows := make([]obs, 0, len(history))
	for i := range history {
		r := &history[i]
		if !r.Date.Before(reportDate) {
			continue
		}
		rows = append(rows, obs{date: r.Date, gameID: r.GameID, home: r.IsHomePitcher, count: r.Count})
	}
	var todayCount func(models.Stat) int
	if today != nil {
		todayCount = today.Count
	}
	return aggregate(catalog.PitcherMetrics(inning), rows, venueHome, todayCount)
}

// AggregateBatting is the batting-team counterpart. The venue split follows
// the team's own home/away flag, which is the inverse of the opposing
// pitcher's.
func AggregateBatting(history []models.BattingFactRow, inning int, reportDate time.Time, venueHome bool, today *models.BattingFactRow) map[models.Stat]Aggregate {
	rows := make([]obs, 0, len(history))
	for i := range history {
		r := &history[i]
		if !r.Date.Before(reportDate) {
			continue
		}
		rows = append(rows, obs{date: r.Date, gameID: r.GameID, home: r.IsHomeTeam, count: r.Count})
	}
	var todayCount func(models.Stat) int
	if today != nil {
		todayCount = today.Count
	}
	return aggregate(catalog.BattingMetrics(inning), rows, venueHome, todayCount)
}

func aggregate(defs []catalog.MetricDefinition, rows []obs, venueHome bool, today func(models.Stat) int) map[models.Stat]Aggregate {
	games := distinctGames(rows)
	venue := make([]obs, 0, len(rows))
	for _, r := range rows {
		if r.home == venueHome {
			venue = append(venue, r)
		}
	}
	venueGames := distinctGames(venue)
	last := latest(rows)

	out := make(map[models.Stat]Aggregate, len(defs))
	for _, def := range defs {
		agg := Aggregate{Games: games, VenueGames: venueGames}
		if games > 0 {
			agg.Average = float64(sumCounts(rows, def.Stat)) / float64(games)
			agg.ZeroPct = pct(gamesWithout(rows, def.Stat), games)
			agg.PositivePct = pct(gamesWith(rows, def.Stat), games)
		}
		if def.RateDenominator != "" {
			if den := sumCounts(rows, def.RateDenominator); den > 0 {
				agg.Rate = float64(sumCounts(rows, def.Stat)) / float64(den) * 100
			}
		}
		if venueGames > 0 {
			agg.VenueAverage = float64(sumCounts(venue, def.Stat)) / float64(venueGames)
			agg.VenueZeroPct = pct(gamesWithout(venue, def.Stat), venueGames)
			agg.VenuePositivePct = pct(gamesWith(venue, def.Stat), venueGames)
		}
		if last != nil {
			agg.LastGame = models.LastGameValue{Value: last.count(def.Stat), Valid: true}
		}
		if today != nil {
			agg.Today = today(def.Stat)
		}
		out[def.Stat] = agg
	}
	return out
}

// distinctGames counts unique game IDs; every per-game denominator in the
// report is a distinct count, never a row count.
func distinctGames(rows []obs) int {
	seen := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		seen[r.gameID] = struct{}{}
	}
	return len(seen)
}

func sumCounts(rows []obs, s models.Stat) int {
	total := 0
	for _, r := range rows {
		total += r.count(s)
	}
	return total
}

// gamesWithout counts distinct games where the stat never occurred.
// A game counts on the occurrence side as soon as any of its rows shows a
// positive count.
func gamesWithout(rows []obs, s models.Stat) int {
	return distinctGames(rows) - gamesWith(rows, s)
}

func gamesWith(rows []obs, s models.Stat) int {
	seen := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		if r.count(s) > 0 {
			seen[r.gameID] = struct{}{}
		}
	}
	return len(seen)
}

func pct(n, den int) float64 {
	return float64(n) / float64(den) * 100
}

// latest picks the most recent observation by (date, game ID). The game ID
// tiebreak keeps doubleheader selection deterministic.
func latest(rows []obs) *obs {
	var best *obs
	for i := range rows {
		r := &rows[i]
		if best == nil || r.date.After(best.date) ||
			(r.date.Equal(best.date) && r.gameID > best.gameID) {
			best = r
		}
	}
	return best
}
