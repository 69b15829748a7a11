package report

import (
	"sort"

	"github.com/Karun12234/mlb-inning-report/internal/catalog"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// topPicks is the length cap on every recommendation list.
const topPicks = 4

// KBet derives one side's strikeout bet from that side's venue and overall
// occurrence percentages plus its ordinal grade.
func KBet(venuePct, overallPct float64, conf models.Confidence) models.Bet {
	switch {
	case venuePct >= catalog.KRateEscalation && overallPct >= catalog.KRateEscalation:
		return models.BetKHighOver
	case venuePct >= catalog.KRateEscalation || overallPct >= catalog.KRateEscalation:
		return models.BetKOver
	case conf == models.ConfidenceLow:
		return models.BetKUnder
	}
	return models.BetNeutral
}

// RunsBet maps the first-run composite to a runs bet. Both sides of a game
// carry the same bet; only the High grades actionate.
func RunsBet(c models.Composite) models.Bet {
	switch c {
	case models.CompositeHighNRFI:
		return models.UnderBet(models.StatRuns)
	case models.CompositeHighYRFI:
		return models.OverBet(models.StatRuns)
	}
	return models.BetNeutral
}

// OverUnderBet maps a directional composite to a stat bet, again identical on
// both sides.
func OverUnderBet(s models.Stat, c models.Composite) models.Bet {
	switch c {
	case models.CompositeHighUnder:
		return models.UnderBet(s)
	case models.CompositeHighOverLabel:
		return models.OverBet(s)
	}
	return models.BetNeutral
}

// Pick is one recommendation line: a game, its pitcher matchup, the grade
// that earned the slot and the two driving values.
type Pick struct {
	Game          string  `json:"game"`
	Pitcher       string  `json:"pitcher"`
	Opponent      string  `json:"opponent"`
	Label         string  `json:"label"`
	PitcherValue  float64 `json:"pitcher_value"`
	OpponentValue float64 `json:"opponent_value"`
}

// Recommendations ranks every category's top picks from a finished table.
// Sorting is stable over the table's row order, so equal-scoring rows keep
// their schedule order and repeated runs emit identical lists.
func Recommendations(t Table) map[string][]Pick {
	out := map[string][]Pick{
		"Strikeouts":     strikeoutPicks(t),
		"Run Prevention": runPreventionPicks(t),
		"NRFI":           nrfiPicks(t),
		"YRFI":           yrfiPicks(t),
		"Hits Under":     hitsPicks(t, models.CompositeHighUnder, models.CompositeModerateUnder),
		"Hits Over":      hitsPicks(t, models.CompositeHighOverLabel, models.CompositeModerateOver),
	}
	for _, s := range catalog.OverUnderStats {
		out[s.DisplayName()+" Under"] = statPicks(t, s, models.CompositeHighUnder, false)
		out[s.DisplayName()+" Over"] = statPicks(t, s, models.CompositeHighOverLabel, true)
	}
	return out
}

func strikeoutPicks(t Table) []Pick {
	picks := make([]Pick, 0, len(t))
	for _, r := range t {
		picks = append(picks, Pick{
			Game:          r.Game,
			Pitcher:       r.Pitcher,
			Opponent:      r.Opponent,
			Label:         string(r.Overall[models.StatStrikeouts]),
			PitcherValue:  r.PitcherStats[models.StatStrikeouts].PositivePct,
			OpponentValue: r.OpponentStats[models.StatStrikeouts].PositivePct,
		})
	}
	sort.SliceStable(picks, func(i, j int) bool {
		wi := models.Composite(picks[i].Label).OrdinalWeight()
		wj := models.Composite(picks[j].Label).OrdinalWeight()
		if wi != wj {
			return wi > wj
		}
		return picks[i].PitcherValue > picks[j].PitcherValue
	})
	return capPicks(picks)
}

func runPreventionPicks(t Table) []Pick {
	picks := make([]Pick, 0, len(t))
	for _, r := range t {
		picks = append(picks, Pick{
			Game:          r.Game,
			Pitcher:       r.Pitcher,
			Opponent:      r.Opponent,
			Label:         string(r.RunPrevention),
			PitcherValue:  r.PitcherStats[models.StatRuns].PositivePct,
			OpponentValue: r.OpponentStats[models.StatRuns].Average,
		})
	}
	sort.SliceStable(picks, func(i, j int) bool {
		wi := models.Confidence(picks[i].Label).Weight()
		wj := models.Confidence(picks[j].Label).Weight()
		if wi != wj {
			return wi > wj
		}
		return picks[i].PitcherValue < picks[j].PitcherValue
	})
	return capPicks(picks)
}

func nrfiPicks(t Table) []Pick {
	picks := make([]Pick, 0, len(t))
	for _, r := range t {
		picks = append(picks, runsPick(r))
	}
	sortByRunWeight(picks)
	return capPicks(picks)
}

func yrfiPicks(t Table) []Pick {
	var picks []Pick
	for _, r := range t {
		c := r.Overall[models.StatRuns]
		if c == models.CompositeHighYRFI || c == models.CompositeModerateYRFI {
			picks = append(picks, runsPick(r))
		}
	}
	sortByRunWeight(picks)
	return capPicks(picks)
}

func runsPick(r Row) Pick {
	return Pick{
		Game:          r.Game,
		Pitcher:       r.Pitcher,
		Opponent:      r.Opponent,
		Label:         string(r.Overall[models.StatRuns]),
		PitcherValue:  r.PitcherStats[models.StatRuns].VenueZeroPct,
		OpponentValue: r.OpponentStats[models.StatRuns].VenueZeroPct,
	}
}

func sortByRunWeight(picks []Pick) {
	sort.SliceStable(picks, func(i, j int) bool {
		wi := models.Composite(picks[i].Label).RunWeight()
		wj := models.Composite(picks[j].Label).RunWeight()
		if wi != wj {
			return wi > wj
		}
		return picks[i].PitcherValue > picks[j].PitcherValue
	})
}

// hitsPicks includes the Moderate leaners: the hits market keeps a deeper
// candidate pool than the other over/under stats.
func hitsPicks(t Table, high, moderate models.Composite) []Pick {
	var picks []Pick
	for _, r := range t {
		c := r.Overall[models.StatHits]
		if c != high && c != moderate {
			continue
		}
		picks = append(picks, Pick{
			Game:          r.Game,
			Pitcher:       r.Pitcher,
			Opponent:      r.Opponent,
			Label:         string(c),
			PitcherValue:  r.PitcherStats[models.StatHits].ZeroPct,
			OpponentValue: r.OpponentStats[models.StatHits].ZeroPct,
		})
	}
	sort.SliceStable(picks, func(i, j int) bool {
		wi := models.Composite(picks[i].Label).OverUnderWeight()
		wj := models.Composite(picks[j].Label).OverUnderWeight()
		if wi != wj {
			return wi > wj
		}
		return picks[i].PitcherValue > picks[j].PitcherValue
	})
	return capPicks(picks)
}

// statPicks keeps only the exact High grade for one over/under stat. Under
// candidates tiebreak toward the stingier pitcher; Over candidates toward the
// leakier one.
func statPicks(t Table, s models.Stat, want models.Composite, over bool) []Pick {
	var picks []Pick
	for _, r := range t {
		if r.Overall[s] != want {
			continue
		}
		picks = append(picks, Pick{
			Game:          r.Game,
			Pitcher:       r.Pitcher,
			Opponent:      r.Opponent,
			Label:         string(want),
			PitcherValue:  r.PitcherStats[s].Average,
			OpponentValue: r.OpponentStats[s].Average,
		})
	}
	sort.SliceStable(picks, func(i, j int) bool {
		if picks[i].PitcherValue != picks[j].PitcherValue {
			if over {
				return picks[i].PitcherValue > picks[j].PitcherValue
			}
			return picks[i].PitcherValue < picks[j].PitcherValue
		}
		if over {
			return picks[i].OpponentValue > picks[j].OpponentValue
		}
		return picks[i].OpponentValue < picks[j].OpponentValue
	})
	return capPicks(picks)
}

func capPicks(picks []Pick) []Pick {
	if picks == nil {
		return []Pick{}
	}
	if len(picks) > topPicks {
		picks = picks[:topPicks]
	}
	return picks
}
