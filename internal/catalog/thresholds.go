package catalog

import (
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// Direction states whether larger values earn higher confidence.
type Direction int

const (
	GreaterIsBetter Direction = iota
	LessIsBetter
	// LessIsWorse inverts the less-than ladder: values at or below High map
	// to Low. Used for the batting side of hit averages, where small
	// averages grade as weak lineups rather than strong ones.
	LessIsWorse
)

// Source states which aggregate value the rule classifies.
type Source int

const (
	SourceAverage Source = iota
	SourcePositivePct
)

// Rule is one single-value confidence rule: comparison direction plus the
// {high, moderate} cutpoints.
type Rule struct {
	High      float64
	Moderate  float64
	Direction Direction
	Source    Source
}

// The per-stat rule tables reproduce the production thresholds exactly,
// asymmetric boundaries included. Do not "fix" apparent mirror-image
// inconsistencies between sides; they are intentional.
var pitcherRules = map[models.Stat]Rule{
	models.StatWalks:      {High: 8.0, Moderate: 12.0, Direction: LessIsBetter, Source: SourcePositivePct},
	models.StatSingles:    {High: 0.3, Moderate: 0.6, Direction: LessIsBetter, Source: SourceAverage},
	models.StatDoubles:    {High: 0.05, Moderate: 0.15, Direction: LessIsBetter, Source: SourceAverage},
	models.StatTriples:    {High: 0.01, Moderate: 0.03, Direction: LessIsBetter, Source: SourceAverage},
	models.StatHomers:     {High: 0.05, Moderate: 0.15, Direction: LessIsBetter, Source: SourceAverage},
	models.StatTotalBases: {High: 1.0, Moderate: 2.0, Direction: LessIsBetter, Source: SourceAverage},
	models.StatHits:       {High: 0.5, Moderate: 1.0, Direction: LessIsBetter, Source: SourceAverage},
}

var opponentRules = map[models.Stat]Rule{
	models.StatWalks:      {High: 0.5, Moderate: 0.3, Direction: GreaterIsBetter, Source: SourceAverage},
	models.StatSingles:    {High: 0.6, Moderate: 0.3, Direction: GreaterIsBetter, Source: SourceAverage},
	models.StatDoubles:    {High: 0.15, Moderate: 0.05, Direction: GreaterIsBetter, Source: SourceAverage},
	models.StatTriples:    {High: 0.03, Moderate: 0.01, Direction: GreaterIsBetter, Source: SourceAverage},
	models.StatHomers:     {High: 0.15, Moderate: 0.05, Direction: GreaterIsBetter, Source: SourceAverage},
	models.StatTotalBases: {High: 2.0, Moderate: 1.0, Direction: GreaterIsBetter, Source: SourceAverage},
	models.StatHits:       {High: 0.5, Moderate: 1.0, Direction: LessIsWorse, Source: SourceAverage},
}

// PitcherRule returns the pitching-side confidence rule for a stat.
func PitcherRule(s models.Stat) (Rule, bool) {
	r, ok := pitcherRules[s]
	return r, ok
}

// OpponentRule returns the batting-side confidence rule for a stat.
func OpponentRule(s models.Stat) (Rule, bool) {
	r, ok := opponentRules[s]
	return r, ok
}

// OverUnderStats lists the stats graded through the paired-ordinal
// Over/Under composite, in report order. Hits is excluded: its composite
// operates on NRHI percentages directly. Strikeouts and runs have dedicated
// rate- and percentage-driven composites.
var OverUnderStats = []models.Stat{
	models.StatWalks, models.StatSingles, models.StatDoubles,
	models.StatTriples, models.StatHomers, models.StatTotalBases,
}

// Strikeout rate constants: the ordinal ladder and the escalation gate.
const (
	KRateHigh     = 25.0
	KRateModerate = 15.0
	// KRateEscalation is the venue-and-overall gate for the HIGH OVER grade.
	KRateEscalation = 80.0
)

// NRFI/NRHI percentage ladders. The moderate band is a closed interval
// [50, 74]; values between 74 and 75 fall through to Low.
const (
	ZeroPctHigh        = 75.0
	ZeroPctModerateLow = 50.0
	ZeroPctModerateTop = 74.0
)

// Composite NRFI/YRFI and hits-composite percentage gates.
const (
	CompositeHighPct     = 70.0
	CompositeModeratePct = 60.0
	CompositeOverHighPct = 30.0
	CompositeOverModPct  = 40.0
)

// Run-prevention signal gates.
const (
	RunPrevHighRunsPct  = 50.0
	RunPrevHighNRFIPct  = 70.0
	RunPrevHighOppRPG   = 0.4
	RunPrevLowRunsPct   = 100.0
	RunPrevLowNRFIPct   = 50.0
	RunPrevLowOppRPG    = 0.7
)

// Opponent runs-per-game ladder. Another closed-band rule: values between
// 0.35 and 0.36 grade High.
const (
	OppRPGLowMax      = 0.35
	OppRPGModerateLow = 0.36
	OppRPGModerateTop = 0.65
)

// Pitcher runs-allowed percentage ladder.
const (
	RunsAllowedPctHigh     = 25.0
	RunsAllowedPctModerate = 50.0
)
