package report

import (
	"fmt"
	"sort"

	"github.com/Karun12234/mlb-inning-report/internal/catalog"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// Parlay is one two-game pairing inside a category, scored by the mean of
// the two legs' label weights.
type Parlay struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// leg is one qualifying row reduced to its pairing label and weight.
type leg struct {
	label  string
	weight float64
}

// parlayCategory selects and scores a table's qualifying legs for one market.
type parlayCategory struct {
	qualifies func(Row) bool
	toLeg     func(Row) leg
}

func parlayCategories() map[string]parlayCategory {
	cats := map[string]parlayCategory{
		"Strikeout Parlays": {
			qualifies: func(r Row) bool {
				return r.Overall[models.StatStrikeouts] == models.CompositeHigh
			},
			toLeg: func(r Row) leg {
				return leg{
					label:  fmt.Sprintf("%s (%s)", r.Game, r.Pitcher),
					weight: r.Overall[models.StatStrikeouts].OrdinalWeight(),
				}
			},
		},
		"NRFI Parlays": {
			qualifies: func(r Row) bool {
				return r.Overall[models.StatRuns] == models.CompositeHighNRFI
			},
			toLeg: func(r Row) leg {
				return leg{
					label:  r.Game + " (NRFI)",
					weight: r.Overall[models.StatRuns].RunWeight(),
				}
			},
		},
		"YRFI Parlays": {
			qualifies: func(r Row) bool {
				c := r.Overall[models.StatRuns]
				return c == models.CompositeHighYRFI || c == models.CompositeModerateYRFI
			},
			toLeg: func(r Row) leg {
				return leg{
					label:  r.Game + " (YRFI)",
					weight: r.Overall[models.StatRuns].RunWeight(),
				}
			},
		},
	}
	overUnder := append([]models.Stat{models.StatHits}, catalog.OverUnderStats...)
	for _, s := range overUnder {
		s := s
		cats[s.DisplayName()+" Under Parlays"] = parlayCategory{
			qualifies: func(r Row) bool {
				return r.Overall[s] == models.CompositeHighUnder
			},
			toLeg: overUnderLeg(s, "Under"),
		}
		cats[s.DisplayName()+" Over Parlays"] = parlayCategory{
			qualifies: func(r Row) bool {
				return r.Overall[s] == models.CompositeHighOverLabel
			},
			toLeg: overUnderLeg(s, "Over"),
		}
	}
	return cats
}

func overUnderLeg(s models.Stat, direction string) func(Row) leg {
	return func(r Row) leg {
		return leg{
			label:  fmt.Sprintf("%s (%s %s)", r.Game, s.DisplayName(), direction),
			weight: r.Overall[s].OverUnderWeight(),
		}
	}
}

// Parlays builds every category's ranked pairings from a finished table.
func Parlays(t Table) map[string][]Parlay {
	out := make(map[string][]Parlay)
	for name, cat := range parlayCategories() {
		out[name] = rankPairs(t, cat)
	}
	return out
}

// ParlaysFor returns one category's ranked pairings, rejecting unknown
// category names at the boundary.
func ParlaysFor(t Table, category string) ([]Parlay, error) {
	cat, ok := parlayCategories()[category]
	if !ok {
		return nil, fmt.Errorf("parlay category %q: %w", category, models.ErrUnknownCategory)
	}
	return rankPairs(t, cat), nil
}

// rankPairs enumerates every unordered pair of qualifying legs and sorts by
// score descending. Fewer than two legs yields an empty slate, never a
// single-leg "parlay". The sort is stable over enumeration order, so equal
// scores keep schedule order and output is reproducible.
func rankPairs(t Table, cat parlayCategory) []Parlay {
	var legs []leg
	for _, r := range t {
		if cat.qualifies(r) {
			legs = append(legs, cat.toLeg(r))
		}
	}
	if len(legs) < 2 {
		return []Parlay{}
	}
	pairs := make([]Parlay, 0, len(legs)*(len(legs)-1)/2)
	for i := 0; i < len(legs); i++ {
		for j := i + 1; j < len(legs); j++ {
			pairs = append(pairs, Parlay{
				Description: legs[i].label + " & " + legs[j].label,
				Score:       (legs[i].weight + legs[j].weight) / 2,
			})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	return pairs
}
