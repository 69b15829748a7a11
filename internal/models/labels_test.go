package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceWeight(t *testing.T) {
	assert.Equal(t, 1.0, ConfidenceLow.Weight())
	assert.Equal(t, 2.0, ConfidenceModerate.Weight())
	assert.Equal(t, 3.0, ConfidenceHigh.Weight())
	assert.Equal(t, 4.0, ConfidenceHighOver.Weight())
	assert.Equal(t, 0.0, ConfidenceNeutral.Weight())
	assert.Equal(t, 0.0, Confidence("garbage").Weight())
}

func TestCompositeRunWeight(t *testing.T) {
	assert.Equal(t, 3.0, CompositeHighNRFI.RunWeight())
	assert.Equal(t, 3.0, CompositeHighYRFI.RunWeight())
	assert.Equal(t, 2.5, CompositeModerateNRFI.RunWeight())
	assert.Equal(t, 2.5, CompositeModerateYRFI.RunWeight())
	assert.Equal(t, 1.0, CompositeLow.RunWeight())
	assert.Equal(t, 0.0, CompositeNeutral.RunWeight())
	// Over/under labels carry no run weight.
	assert.Equal(t, 0.0, CompositeHighUnder.RunWeight())
}

func TestCompositeOverUnderWeight(t *testing.T) {
	assert.Equal(t, 3.0, CompositeHighUnder.OverUnderWeight())
	assert.Equal(t, 3.0, CompositeHighOverLabel.OverUnderWeight())
	assert.Equal(t, 2.5, CompositeModerateUnder.OverUnderWeight())
	assert.Equal(t, 2.5, CompositeModerateOver.OverUnderWeight())
	assert.Equal(t, 1.0, CompositeLow.OverUnderWeight())
	assert.Equal(t, 0.0, CompositeHighNRFI.OverUnderWeight())
}

func TestCompositeOrdinalWeight(t *testing.T) {
	assert.Equal(t, 4.0, CompositeHighOver.OrdinalWeight())
	assert.Equal(t, 3.0, CompositeHigh.OrdinalWeight())
	assert.Equal(t, 0.0, CompositeHighNRFI.OrdinalWeight())
}

func TestBetLabels(t *testing.T) {
	assert.Equal(t, Bet("Under Runs Bet"), UnderBet(StatRuns))
	assert.Equal(t, Bet("Over Total Bases Bet"), OverBet(StatTotalBases))
	assert.Equal(t, Bet("Under Hits Bet"), UnderBet(StatHits))
	assert.Equal(t, Bet("Under Strikeout Bet"), UnderBet(StatStrikeouts))
}

func TestStatDisplayName(t *testing.T) {
	assert.Equal(t, "Strikeout", StatStrikeouts.DisplayName())
	assert.Equal(t, "Total Bases", StatTotalBases.DisplayName())
	assert.Equal(t, "Runs", StatRuns.DisplayName())
	// Unknown stats render their raw identifier.
	assert.Equal(t, "bunts", Stat("bunts").DisplayName())
}

func TestLastGameValueString(t *testing.T) {
	assert.Equal(t, "N/A", LastGameValue{}.String())
	assert.Equal(t, "0", LastGameValue{Value: 0, Valid: true}.String())
	assert.Equal(t, "3", LastGameValue{Value: 3, Valid: true}.String())
}

func TestGamePairingLabel(t *testing.T) {
	g := GamePairing{HomeTeam: "NYY", AwayTeam: "BOS"}
	assert.Equal(t, "BOS @ NYY", g.Label())
}
