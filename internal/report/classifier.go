package report

import (
	"github.com/Karun12234/mlb-inning-report/internal/catalog"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// Classify grades one aggregate against a per-stat threshold rule. The rule
// names which derived value it reads, so callers never pick the wrong one.
func Classify(agg Aggregate, r catalog.Rule) models.Confidence {
	v := agg.Average
	if r.Source == catalog.SourcePositivePct {
		v = agg.PositivePct
	}
	switch r.Direction {
	case catalog.GreaterIsBetter:
		if v >= r.High {
			return models.ConfidenceHigh
		}
		if v >= r.Moderate {
			return models.ConfidenceModerate
		}
		return models.ConfidenceLow
	case catalog.LessIsBetter:
		if v <= r.High {
			return models.ConfidenceHigh
		}
		if v <= r.Moderate {
			return models.ConfidenceModerate
		}
		return models.ConfidenceLow
	case catalog.LessIsWorse:
		// Inverted ladder: small values grade Low, large ones High.
		if v <= r.High {
			return models.ConfidenceLow
		}
		if v <= r.Moderate {
			return models.ConfidenceModerate
		}
		return models.ConfidenceHigh
	}
	return models.ConfidenceLow
}

// PitcherKConfidence grades the pitcher's overall strikeout occurrence rate.
func PitcherKConfidence(rate float64) models.Confidence {
	if rate >= catalog.KRateHigh {
		return models.ConfidenceHigh
	}
	if rate >= catalog.KRateModerate {
		return models.ConfidenceModerate
	}
	return models.ConfidenceLow
}

// OpponentKConfidence grades the batting team's struck-out rate. Unlike the
// pitcher ladder this one has no Moderate floor: everything between the Low
// ceiling and the High floor is Moderate.
func OpponentKConfidence(rate float64) models.Confidence {
	if rate >= catalog.KRateHigh {
		return models.ConfidenceHigh
	}
	if rate <= catalog.KRateModerate {
		return models.ConfidenceLow
	}
	return models.ConfidenceModerate
}

// ZeroPctConfidence grades an NRFI/NRHI-style percentage. The Moderate band
// is closed on both ends; values strictly between its top and the High floor
// grade Low.
func ZeroPctConfidence(p float64) models.Confidence {
	if p >= catalog.ZeroPctHigh {
		return models.ConfidenceHigh
	}
	if p >= catalog.ZeroPctModerateLow && p <= catalog.ZeroPctModerateTop {
		return models.ConfidenceModerate
	}
	return models.ConfidenceLow
}

// OppRunsPerGameConfidence grades an opponent's runs-per-game average. Low
// scoring opponents grade Low threat; the band between the Low ceiling and
// the Moderate floor grades High.
func OppRunsPerGameConfidence(v float64) models.Confidence {
	if v <= catalog.OppRPGLowMax {
		return models.ConfidenceLow
	}
	if v >= catalog.OppRPGModerateLow && v <= catalog.OppRPGModerateTop {
		return models.ConfidenceModerate
	}
	return models.ConfidenceHigh
}

// RunsAllowedConfidence grades the percentage of a pitcher's starts in which
// they allowed at least one run in the inning.
func RunsAllowedConfidence(p float64) models.Confidence {
	if p <= catalog.RunsAllowedPctHigh {
		return models.ConfidenceHigh
	}
	if p <= catalog.RunsAllowedPctModerate {
		return models.ConfidenceModerate
	}
	return models.ConfidenceLow
}

// RunPreventionConfidence combines the pitcher's scoring-allowed profile with
// the opposing offense into a single ordinal signal.
func RunPreventionConfidence(runsAllowedPct, nrfiPct, oppRunsPerGame float64) models.Confidence {
	if runsAllowedPct < catalog.RunPrevHighRunsPct &&
		nrfiPct > catalog.RunPrevHighNRFIPct &&
		oppRunsPerGame < catalog.RunPrevHighOppRPG {
		return models.ConfidenceHigh
	}
	if runsAllowedPct > catalog.RunPrevLowRunsPct &&
		nrfiPct < catalog.RunPrevLowNRFIPct &&
		oppRunsPerGame > catalog.RunPrevLowOppRPG {
		return models.ConfidenceLow
	}
	return models.ConfidenceModerate
}

// StrikeoutComposite fuses the four strikeout occurrence rates (pitcher and
// opponent, venue and overall) with the per-side ordinals. All four rates at
// the escalation gate earns the HIGH OVER grade.
func StrikeoutComposite(pVenueRate, pOverallRate, oVenueRate, oOverallRate float64, pConf, oConf models.Confidence) models.Composite {
	hot := 0
	for _, r := range []float64{pVenueRate, pOverallRate, oVenueRate, oOverallRate} {
		if r >= catalog.KRateEscalation {
			hot++
		}
	}
	switch {
	case hot == 4:
		return models.CompositeHighOver
	case hot >= 2:
		return models.CompositeHigh
	case pConf == models.ConfidenceHigh && oConf == models.ConfidenceHigh:
		return models.CompositeHigh
	case pConf == models.ConfidenceLow && oConf == models.ConfidenceLow:
		return models.CompositeLow
	}
	return models.CompositeModerate
}

// RunsComposite grades the first-run market from both venue NRFI percentages
// and the run-prevention signal. The YRFI side reads the complements of the
// same percentages.
func RunsComposite(pVenueNRFI, oVenueNRFI float64, runPrevention models.Confidence) models.Composite {
	score := runPrevention.Weight()
	switch {
	case pVenueNRFI >= catalog.CompositeHighPct && oVenueNRFI >= catalog.CompositeHighPct && score >= 2:
		return models.CompositeHighNRFI
	case pVenueNRFI >= catalog.CompositeModeratePct && oVenueNRFI >= catalog.CompositeModeratePct && score >= 1:
		return models.CompositeModerateNRFI
	case 100-pVenueNRFI >= catalog.CompositeHighPct && 100-oVenueNRFI >= catalog.CompositeHighPct:
		return models.CompositeHighYRFI
	case 100-pVenueNRFI >= catalog.CompositeModeratePct && 100-oVenueNRFI >= catalog.CompositeModeratePct:
		return models.CompositeModerateYRFI
	}
	return models.CompositeLow
}

// HitsComposite grades the hits market from both sides' no-hit-inning
// percentages. High percentages on both sides back the Under; low ones back
// the Over.
func HitsComposite(pNRHIPct, oNRHIPct float64) models.Composite {
	switch {
	case pNRHIPct >= catalog.CompositeHighPct && oNRHIPct >= catalog.CompositeHighPct:
		return models.CompositeHighUnder
	case pNRHIPct >= catalog.CompositeModeratePct && oNRHIPct >= catalog.CompositeModeratePct:
		return models.CompositeModerateUnder
	case pNRHIPct <= catalog.CompositeOverHighPct && oNRHIPct <= catalog.CompositeOverHighPct:
		return models.CompositeHighOverLabel
	case pNRHIPct <= catalog.CompositeOverModPct && oNRHIPct <= catalog.CompositeOverModPct:
		return models.CompositeModerateOver
	}
	return models.CompositeNeutral
}

// OverUnderComposite pairs the two per-side ordinals for one stat. Evaluated
// Under-side first, so an ambiguous 2/2 pairing leans Under.
func OverUnderComposite(pConf, oConf models.Confidence) models.Composite {
	p, o := pConf.Weight(), oConf.Weight()
	switch {
	case p == 3 && o == 1:
		return models.CompositeHighUnder
	case p >= 2 && o <= 2:
		return models.CompositeModerateUnder
	case p == 1 && o == 3:
		return models.CompositeHighOverLabel
	case p <= 2 && o >= 2:
		return models.CompositeModerateOver
	}
	return models.CompositeNeutral
}
