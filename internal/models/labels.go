package models

import "strconv"

// Confidence is the ordinal per-side confidence level.
type Confidence string

const (
	ConfidenceLow      Confidence = "Low"
	ConfidenceModerate Confidence = "Moderate"
	ConfidenceHigh     Confidence = "High"
	ConfidenceHighOver Confidence = "HIGH OVER"
	ConfidenceNeutral  Confidence = "Neutral"
)

// Weight maps an ordinal confidence to its numeric rank. Unknown labels
// weigh zero so downstream sorting never fails on unexpected input.
func (c Confidence) Weight() float64 {
	switch c {
	case ConfidenceLow:
		return 1
	case ConfidenceModerate:
		return 2
	case ConfidenceHigh:
		return 3
	case ConfidenceHighOver:
		return 4
	}
	return 0
}

// Composite is a directional confidence label combining both sides of a
// metric. The strikeout composite reuses the plain ordinal vocabulary plus
// HIGH OVER; runs use the NRFI/YRFI variants; everything else uses
// Over/Under.
type Composite string

const (
	CompositeLow             Composite = "Low"
	CompositeModerate        Composite = "Moderate"
	CompositeHigh            Composite = "High"
	CompositeHighOver        Composite = "HIGH OVER"
	CompositeNeutral         Composite = "Neutral"
	CompositeHighNRFI        Composite = "High (NRFI)"
	CompositeModerateNRFI    Composite = "Moderate (leaning NRFI)"
	CompositeHighYRFI        Composite = "High (YRFI)"
	CompositeModerateYRFI    Composite = "Moderate (leaning YRFI)"
	CompositeHighUnder       Composite = "High (Under)"
	CompositeModerateUnder   Composite = "Moderate (leaning Under)"
	CompositeHighOverLabel   Composite = "High (Over)"
	CompositeModerateOver    Composite = "Moderate (leaning Over)"
)

// RunWeight ranks the NRFI/YRFI vocabulary for sorting and parlay scoring.
func (c Composite) RunWeight() float64 {
	switch c {
	case CompositeLow:
		return 1
	case CompositeModerateNRFI, CompositeModerateYRFI:
		return 2.5
	case CompositeHighNRFI, CompositeHighYRFI:
		return 3
	}
	return 0
}

// OverUnderWeight ranks the Over/Under vocabulary.
func (c Composite) OverUnderWeight() float64 {
	switch c {
	case CompositeLow:
		return 1
	case CompositeModerateUnder, CompositeModerateOver:
		return 2.5
	case CompositeHighUnder, CompositeHighOverLabel:
		return 3
	}
	return 0
}

// OrdinalWeight ranks the plain vocabulary used by the strikeout composite.
func (c Composite) OrdinalWeight() float64 {
	return Confidence(c).Weight()
}

// Bet is a directional recommendation for one side of one metric.
type Bet string

const (
	BetNeutral Bet = "Neutral"

	// Strikeout-specific vocabulary.
	BetKHighOver Bet = "HIGH OVER"
	BetKOver     Bet = "OVER"
	BetKUnder    Bet = "Under K Bet"
)

// UnderBet and OverBet build the per-metric directional bet labels
// ("Under Hits Bet", "Over Runs Bet", ...).
func UnderBet(s Stat) Bet { return Bet("Under " + s.DisplayName() + " Bet") }
func OverBet(s Stat) Bet  { return Bet("Over " + s.DisplayName() + " Bet") }

// LastGameValue carries a most-recent-game raw count. Valid is false when the
// entity has no qualifying history, which is distinct from a history of zero.
type LastGameValue struct {
	Value int
	Valid bool
}

// String renders the value for report output, with "N/A" for no history.
func (v LastGameValue) String() string {
	if !v.Valid {
		return "N/A"
	}
	return strconv.Itoa(v.Value)
}
